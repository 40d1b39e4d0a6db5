package main

import (
	"jild/internal/infra/persistence/model"

	"gorm.io/gen"
)

const queryOutPath = "./internal/infra/persistence/postgres/query"

// Generates the typed query package for every persisted model. Run from the
// repository root: go run ./cmd/gen
func main() {
	g := newGenerator(queryOutPath)

	g.ApplyBasic(model.All()...)

	g.Execute()
}

func newGenerator(outPath string) *gen.Generator {
	return gen.NewGenerator(gen.Config{
		OutPath: outPath,
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})
}
