// Package colornoise finds noise processor nodes in Go packages.
package colornoise

import (
	"go/types"
	"sort"

	"github.com/zeebo/errs"
	"golang.org/x/mod/module"
	"golang.org/x/tools/go/packages"
)

// Error is the class of all errors returned by this package.
var Error = errs.Class("colornoise")

// NodePkg is the package of the built-in nodes and of node.Config.
const NodePkg = "github.com/gordonklaus/colornoise/node"

type Node struct {
	Pkg, Name         string
	Stateful          bool
	InPorts, OutPorts []*Port
}

type Port struct {
	Out  bool
	Name string
	Node *Node
}

// NewNode returns the node described by o, or nil if o is not a node.
// A type is a node if its pointer has the methods Init(node.Config) error
// and Process, and a function is a node by itself.  Process and function
// parameters and results must all be float32.
func NewNode(o types.Object) *Node {
	if !o.Exported() {
		return nil
	}
	n := &Node{
		Pkg:  o.Pkg().Path(),
		Name: o.Name(),
	}
	switch o := o.(type) {
	case *types.TypeName:
		ms := types.NewMethodSet(types.NewPointer(o.Type()))
		ini := ms.Lookup(o.Pkg(), "Init")
		if ini == nil {
			return nil
		}
		sig, ok := ini.Type().(*types.Signature)
		if !ok {
			return nil
		}
		if sig.Params().Len() != 1 || sig.Results().Len() != 1 ||
			sig.Params().At(0).Type().String() != NodePkg+".Config" ||
			!types.Identical(sig.Results().At(0).Type(), errorType) {
			return nil
		}
		proc := ms.Lookup(o.Pkg(), "Process")
		if proc == nil {
			return nil
		}
		sig, ok = proc.Type().(*types.Signature)
		if !ok {
			return nil
		}
		n.Stateful = true
		return n.init(sig)
	case *types.Func:
		return n.init(o.Type().(*types.Signature))
	}
	return nil
}

var errorType = types.Universe.Lookup("error").Type()

func (n *Node) init(sig *types.Signature) *Node {
	params := sig.Params()
	results := sig.Results()
	if params.Len() == 0 && results.Len() == 0 {
		return nil
	}
	for i := 0; i < params.Len(); i++ {
		v := params.At(i)
		if !isFloat32(v.Type()) {
			return nil
		}
		n.InPorts = append(n.InPorts, &Port{Node: n, Name: v.Name()})
	}
	for i := 0; i < results.Len(); i++ {
		v := results.At(i)
		if !isFloat32(v.Type()) {
			return nil
		}
		n.OutPorts = append(n.OutPorts, &Port{Out: true, Node: n, Name: v.Name()})
	}
	return n
}

func isFloat32(t types.Type) bool {
	b, ok := t.(*types.Basic)
	return ok && b.Kind() == types.Float32
}

// Nodes returns the nodes declared in pkg, sorted by name.
func Nodes(pkg *types.Package) []*Node {
	var nodes []*Node
	scope := pkg.Scope()
	for _, name := range scope.Names() {
		if n := NewNode(scope.Lookup(name)); n != nil {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// LoadCatalog loads the package pkgPath, as seen from dir, and returns its
// nodes.
func LoadCatalog(dir, pkgPath string) ([]*Node, error) {
	if err := module.CheckImportPath(pkgPath); err != nil {
		return nil, Error.Wrap(err)
	}
	pkgs, err := packages.Load(&packages.Config{
		Mode: packages.NeedName | packages.NeedTypes,
		Dir:  dir,
	}, pkgPath)
	if err != nil {
		return nil, Error.Wrap(err)
	}
	var nodes []*Node
	for _, p := range pkgs {
		if len(p.Errors) > 0 {
			return nil, Error.New("%s: %v", p.PkgPath, p.Errors[0])
		}
		nodes = append(nodes, Nodes(p.Types)...)
	}
	sort.Slice(nodes, func(i, j int) bool {
		if nodes[i].Pkg != nodes[j].Pkg {
			return nodes[i].Pkg < nodes[j].Pkg
		}
		return nodes[i].Name < nodes[j].Name
	})
	return nodes, nil
}
