package forbiddencalls

import (
	"log"
	"os"
)

func mustParseID(raw string) uint32 {
	if raw == "" {
		panic("empty id") // want "panic is forbidden"
	}
	return 0
}

func openStore(path string) {
	if path == "" {
		log.Fatal("no store path") // want "log.Fatal is forbidden outside main function"
	}
	log.Fatalf("cannot open %s", path) // want "log.Fatalf is forbidden outside main function"
}

func shutdown(code int) {
	os.Exit(code) // want "os.Exit is forbidden outside main function"
}

func serve() {
	go func() {
		os.Exit(1) // want "os.Exit is forbidden outside main function"
	}()
}

func recovered() (err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Println("recovered", r)
		}
	}()
	return nil
}
