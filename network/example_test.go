package network_test

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/branchnet/gazetteer"
	"github.com/katalvlaran/branchnet/network"
)

// ExampleSession_Insert connects four districts and prints each attachment.
func ExampleSession_Insert() {
	s := network.NewSession(network.WithLogger(log.New(io.Discard)))
	gz := gazetteer.Default()

	for _, name := range []string{"Colombo", "Kandy", "Galle", "Gampaha"} {
		c, _ := gz.Lookup(name)
		res, err := s.Insert(context.Background(), name, c)
		if err != nil {
			fmt.Println(err)
			return
		}
		if res.Edge == nil {
			fmt.Printf("%s is the root\n", name)
			continue
		}
		fmt.Printf("%s -> %s\n", name, res.ConnectedTo())
	}

	_, err := s.Insert(context.Background(), "Kandy", gazetteer.Entry{}.Coordinate())
	fmt.Println(err)
	// Output:
	// Colombo is the root
	// Kandy -> Colombo
	// Galle -> Colombo
	// Gampaha -> Colombo
	// core: duplicate node: "Kandy"
}
