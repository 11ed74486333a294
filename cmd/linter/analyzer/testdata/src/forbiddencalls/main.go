package forbiddencalls

import (
	"log"
	"os"
)

func main() {
	defer func() {
		os.Exit(0) // No want
	}()

	if len(os.Args) > 2 {
		log.Fatal("too many arguments") // No want
	}
}

func init() {
	panic("panic forbidden even in init") // want "panic is forbidden"
	log.Fatalln("forbidden in init")      // want "log.Fatalln is forbidden outside main function"
}
