// Package topics holds the catalog of subject areas offered for
// screening.
package topics

// Topic is a named subject area with a short blurb for the menu.
type Topic struct {
	Name        string
	Description string
}

// Catalog is the fixed list of selectable topics, in menu order.
// Learners can also type a free-text topic; the catalog is the default
// surface, not a restriction.
var Catalog = []Topic{
	{Name: "Python Basics", Description: "Syntax, types, control flow, functions"},
	{Name: "Data Structures", Description: "Lists, stacks, queues, trees, hash maps"},
	{Name: "Machine Learning", Description: "Core concepts, models, training, evaluation"},
}

// Names returns the catalog topic names, in menu order.
func Names() []string {
	names := make([]string, len(Catalog))
	for i, t := range Catalog {
		names[i] = t.Name
	}
	return names
}
