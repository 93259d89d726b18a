package domain

import (
	"testing"

	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/covcheck/internal/model"
)

const (
	animal    m.ClassID = "Animal"
	mammal    m.ClassID = "Mammal"
	cat       m.ClassID = "Cat"
	crocodile m.ClassID = "Crocodile"
)

// animalGraph builds Animal <- Mammal <- Cat and Animal <- Crocodile.
func animalGraph(t *testing.T) *TypeGraph {
	t.Helper()

	graph, err := BuildTypeGraph([]m.ClassDecl{
		{Name: animal},
		{Name: mammal, Parent: animal},
		{Name: cat, Parent: mammal},
		{Name: crocodile, Parent: animal},
	})
	require.NoError(t, err)

	return graph
}

func mammalsAsAnimals() m.Scenario {
	return m.Scenario{
		Name: "mammals-as-animals",
		Steps: []m.Step{
			m.Create("mammals", mammal, cat),
			m.Bind("animals", "mammals", animal),
			m.Write("animals", 0, crocodile),
		},
	}
}

func animalsAsAnimals() m.Scenario {
	return m.Scenario{
		Name: "animals-as-animals",
		Steps: []m.Step{
			m.Create("animals", animal, cat),
			m.Bind("view", "animals", animal),
			m.Write("view", 0, crocodile),
		},
	}
}
