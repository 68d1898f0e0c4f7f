// Package loader provides the plugin-like feature loading system.
//
// Each feature implements the Feature interface, which defines its route
// registration logic. The Manager keeps the registry and loads every enabled
// feature into the Fiber router, in registration order.
//
//	mgr := loader.NewManager()
//	mgr.Register(diff.NewFeature(svc))
//	loaded, err := mgr.LoadAll(app)
package loader
