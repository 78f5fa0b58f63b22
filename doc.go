// Package fluxblock provides the typed port graph behind a visual block editor.
//
// Blocks are instantiated from registered definitions, usually shipped as
// YAML block packs, and wired port to port. Connections are type checked and
// ports declared as flexible "any" adopt the concrete type of whatever they
// are connected to, across every flexible port sharing the same group.
//
//	srv := fluxblock.New(fluxblock.WithEditorMode(true))
//	_, _ = srv.LoadPacks(ctx, "packs/core.yaml")
//	editor := srv.NewEditor()
//	add, _ := editor.AddBlock(ctx, "core-add")
//	num, _ := editor.AddBlock(ctx, "core-number")
//	_, err := editor.Connect(ctx, num.OutputPort("VALUE"), add.InputPort("A"))
//
// Sub-packages hold the graph model, the propagation engine, the registry
// with its category tree and the settings stores.
package fluxblock
