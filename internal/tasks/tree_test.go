package tasks

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type visit struct {
	ID    string
	Depth int
}

func flatten(forest []*Node) []visit {
	var out []visit
	Walk(forest, func(n *Node, depth int) { out = append(out, visit{n.Record.ID, depth}) })
	return out
}

func rec(id, parent string) Record {
	return Record{ID: id, Title: "task " + id, Status: StatusNeedsAction, Parent: parent}
}

func TestBuildForest_PreOrderStable(t *testing.T) {
	forest := BuildForest([]Record{rec("A", ""), rec("B", "A"), rec("C", "")})
	assert.Equal(t, []visit{{"A", 0}, {"B", 1}, {"C", 0}}, flatten(forest))
}

func TestBuildForest_ForwardReferenceAndSiblingOrder(t *testing.T) {
	// Kinder vor dem Elternteil, Geschwister in Eingabereihenfolge
	forest := BuildForest([]Record{
		rec("c2", "p"), rec("g1", "c1"), rec("c1", "p"), rec("p", ""), rec("c3", "p"),
	})
	assert.Equal(t, []visit{{"p", 0}, {"c2", 1}, {"c1", 1}, {"g1", 2}, {"c3", 1}}, flatten(forest))
}

func TestBuildForest_OrphansBecomeRoots(t *testing.T) {
	forest := BuildForest([]Record{rec("a", ""), rec("x", "missing"), rec("y", "x")})
	assert.Equal(t, []visit{{"a", 0}, {"x", 0}, {"y", 1}}, flatten(forest))
}

func TestBuildForest_SelfParentIsRoot(t *testing.T) {
	forest := BuildForest([]Record{rec("a", "a"), rec("b", "a")})
	assert.Equal(t, []visit{{"a", 0}, {"b", 1}}, flatten(forest))
}

func TestBuildForest_CycleDoesNotLoop(t *testing.T) {
	records := []Record{rec("r", ""), rec("a", "b"), rec("b", "a"), rec("c", "a")}
	forest := BuildForest(records)
	got := flatten(forest)
	require.Len(t, got, len(records), "every record must appear exactly once")
	assert.Equal(t, []visit{{"r", 0}, {"a", 0}, {"b", 1}, {"c", 1}}, got)

	_, cycleRoots := BuildForestWithCycles(records)
	assert.Equal(t, []string{"a"}, cycleRoots)

	_, cycleRoots = BuildForestWithCycles([]Record{rec("x", ""), rec("y", "x"), rec("z", "missing")})
	assert.Empty(t, cycleRoots, "orphans are not cycles")
}

func TestBuildForest_DuplicateIDsKeepAllRecords(t *testing.T) {
	forest := BuildForest([]Record{rec("a", ""), rec("a", ""), rec("b", "a")})
	assert.Equal(t, []visit{{"a", 0}, {"b", 1}, {"a", 0}}, flatten(forest))
}

func TestBuildForest_DeepChainNoRecursion(t *testing.T) {
	const depth = 50000
	records := make([]Record, depth)
	for i := range records {
		parent := ""
		if i > 0 {
			parent = "x" + strconv.Itoa(i-1)
		}
		records[i] = rec("x"+strconv.Itoa(i), parent)
	}
	got := flatten(BuildForest(records))
	require.Len(t, got, depth)
	assert.Equal(t, depth-1, got[depth-1].Depth)
}

func TestBuildForest_Empty(t *testing.T) {
	assert.Empty(t, BuildForest(nil))
}

func TestPrune_BlankTitleReparentsChildren(t *testing.T) {
	records := []Record{
		rec("a", ""),
		{ID: "blank", Title: "   ", Status: StatusNeedsAction, Parent: "a"},
		rec("k1", "blank"),
		rec("k2", "blank"),
		rec("b", "a"),
	}
	forest := Prune(BuildForest(records), func(r Record) bool { return !r.Blank() })
	assert.Equal(t, []visit{{"a", 0}, {"k1", 1}, {"k2", 1}, {"b", 1}}, flatten(forest))
}

func TestPrune_CompletedParentPromotesOpenChild(t *testing.T) {
	records := []Record{
		{ID: "1", Title: "done", Status: StatusCompleted},
		{ID: "2", Title: "open", Status: StatusNeedsAction, Parent: "1"},
	}
	forest := Prune(BuildForest(records), func(r Record) bool { return !r.Completed() })
	assert.Equal(t, []visit{{"2", 0}}, flatten(forest))
}

func TestPrune_LeavesInputUntouched(t *testing.T) {
	forest := BuildForest([]Record{rec("a", ""), rec("b", "a")})
	_ = Prune(forest, func(r Record) bool { return r.ID != "a" })
	assert.Equal(t, []visit{{"a", 0}, {"b", 1}}, flatten(forest))
	assert.Equal(t, 2, Count(forest))
}
