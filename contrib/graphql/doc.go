// Package graphql integrates relation resolution with gqlgen.
//
// The Plugin declares the @relation directive before gqlgen validates the
// schema, then resolves every relation found in the loaded sources. A
// schema with unresolved relations aborts gqlgen's generation with the
// aggregated diagnostics:
//
//	cfg, err := config.LoadConfigFromDefaultLocations()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	p, err := graphql.NewPlugin(gen.WithTarget("./relations"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := api.Generate(cfg, api.AddPlugin(p)); err != nil {
//	    log.Fatal(err)
//	}
//
// Projects that run gqlgen without the plugin can add the directive file to
// gqlgen.yml instead (relgen init), see GQLGenConfig.InjectRelationDirective.
// The two setups are alternatives: gqlgen rejects a schema that declares
// @relation twice, so a project with the directive file that also runs the
// plugin must call SkipDirective:
//
//	p, err := graphql.NewPlugin()
//	...
//	err = api.Generate(cfg, api.AddPlugin(p.SkipDirective()))
package graphql
