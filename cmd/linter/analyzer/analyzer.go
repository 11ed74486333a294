package analyzer

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

const (
	analyzerName = "forbiddencalls"
	analyzerDoc  = "reports usage of panic, log.Fatal, zerolog Fatal/Panic events and os.Exit outside main function"
)

// Analyzer checks for calls that terminate the process outside main.
var Analyzer = &analysis.Analyzer{
	Name:     analyzerName,
	Doc:      analyzerDoc,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

// forbidden maps an import path to the functions that end the process.
// The value is the message prefix used in diagnostics.
var forbidden = map[string]map[string]string{
	"log": {
		"Fatal":   "log.Fatal",
		"Fatalf":  "log.Fatalf",
		"Fatalln": "log.Fatalln",
	},
	"os": {
		"Exit": "os.Exit",
	},
	"github.com/rs/zerolog/log": {
		"Fatal": "zerolog log.Fatal",
		"Panic": "zerolog log.Panic",
	},
}

func run(pass *analysis.Pass) (interface{}, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.CallExpr)(nil),
	}

	insp.WithStack(nodeFilter, func(node ast.Node, push bool, stack []ast.Node) bool {
		if !push {
			return true
		}

		callExpr := node.(*ast.CallExpr)
		if isPanic(pass, callExpr) {
			pass.Reportf(callExpr.Pos(), "panic is forbidden")
			return true
		}

		if name, ok := forbiddenCall(pass, callExpr); ok && !insideMain(stack) {
			pass.Reportf(callExpr.Pos(), "%s is forbidden outside main function", name)
		}
		return true
	})

	return nil, nil
}

func isPanic(pass *analysis.Pass, callExpr *ast.CallExpr) bool {
	ident, ok := callExpr.Fun.(*ast.Ident)
	if !ok || ident.Name != "panic" {
		return false
	}

	_, builtin := pass.TypesInfo.Uses[ident].(*types.Builtin)
	return builtin
}

// forbiddenCall reports whether callExpr is a package-qualified call listed in forbidden.
func forbiddenCall(pass *analysis.Pass, callExpr *ast.CallExpr) (string, bool) {
	selectorExpr, ok := callExpr.Fun.(*ast.SelectorExpr)
	if !ok {
		return "", false
	}

	ident, ok := selectorExpr.X.(*ast.Ident)
	if !ok {
		return "", false
	}

	pkgName, ok := pass.TypesInfo.Uses[ident].(*types.PkgName)
	if !ok {
		return "", false
	}

	name, ok := forbidden[pkgName.Imported().Path()][selectorExpr.Sel.Name]
	return name, ok
}

// insideMain reports whether the innermost enclosing function declaration is main.
// Calls inside closures declared in main count as inside main.
func insideMain(stack []ast.Node) bool {
	for i := len(stack) - 1; i >= 0; i-- {
		if funcDecl, ok := stack[i].(*ast.FuncDecl); ok {
			return funcDecl.Recv == nil && funcDecl.Name.Name == "main"
		}
	}
	return false
}
