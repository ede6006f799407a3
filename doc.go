// Package branchnet grows a network of links between named locations, one
// location at a time, and keeps it a minimum spanning tree by great-circle distance.
//
// What is inside?
//
//	A thread-safe library plus a CLI and HTTP service:
//		• geo:          haversine distance (km) and coordinate validation
//		• core:         insert-only complete graph over located nodes
//		• mst:          incremental minimum spanning tree with optimality checks
//		• prim_kruskal: from-scratch Prim and Kruskal used as the reference
//		• placement:    non-overlapping screen positions (uniform or simplex noise)
//		• gazetteer:    name → coordinate tables (built-in Sri Lanka districts, TOML/YAML files)
//		• network:      the Session tying graph, tree, placement and journal together
//		• journal:      BadgerDB insertion log for restore after restart
//		• metrics:      Prometheus instrumentation
//		• config:       TOML configuration with validation
//		• server:       gin HTTP API
//
// Quick start
//
//	s := network.NewSession()
//	gz := gazetteer.Default()
//	for _, name := range []string{"Colombo", "Kandy", "Galle"} {
//		c, _ := gz.Lookup(name)
//		res, err := s.Insert(ctx, name, c)
//		if err != nil {
//			return err
//		}
//		fmt.Println(name, "→", res.ConnectedTo())
//	}
//
// Every insertion links the new location to its nearest existing one, then lets
// the new links replace heavier old ones where that lowers the total. The tree
// after k insertions is always a minimum spanning tree of those k locations.
//
// The binary lives in cmd/branchnet:
//
//	branchnet connect Kandy Galle Jaffna
//	branchnet serve --journal ./data
//	branchnet verify
package branchnet
