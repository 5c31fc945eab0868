package split

import (
	"fmt"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"testing"
)

func makeTable(n int) dataframe.DataFrame {
	ids := make([]string, n)
	values := make([]int, n)
	for i := 0; i < n; i++ {
		ids[i] = fmt.Sprintf("row-%d", i)
		values[i] = i * 10
	}
	return dataframe.New(
		series.New(ids, series.String, "id"),
		series.New(values, series.Int, "value"),
	)
}

func TestSplitExhaustiveAndDisjoint(t *testing.T) {
	for _, n := range []int{1, 2, 9, 100, 1000, 7043} {
		df := makeTable(n)
		train, validate, test, err := Split(df, DefaultTestFraction, DefaultSeed)
		assert.NoError(t, err)
		assert.Equal(t, n, train.Nrow()+validate.Nrow()+test.Nrow())

		seen := make(map[string]int)
		for _, part := range []dataframe.DataFrame{train, validate, test} {
			for _, id := range part.Col("id").Records() {
				seen[id]++
			}
		}
		assert.Len(t, seen, n)
		for id, count := range seen {
			assert.Equal(t, 1, count, id)
		}

		wantTrain, wantValidate, wantTest := SplitSizes(n, DefaultTestFraction)
		assert.Equal(t, wantTrain, train.Nrow())
		assert.Equal(t, wantValidate, validate.Nrow())
		assert.Equal(t, wantTest, test.Nrow())
	}
}

func TestSplitSizes(t *testing.T) {
	train, validate, test := SplitSizes(100, DefaultTestFraction)
	assert.Equal(t, 12, test)
	assert.Equal(t, 11, validate)
	assert.Equal(t, 77, train)

	train, validate, test = SplitSizes(7043, DefaultTestFraction)
	assert.Equal(t, 845, test)
	assert.Equal(t, 744, validate)
	assert.Equal(t, 5454, train)
}

func TestSplitDeterministic(t *testing.T) {
	df := makeTable(500)
	train1, validate1, test1, err := Split(df, DefaultTestFraction, DefaultSeed)
	assert.NoError(t, err)
	train2, validate2, test2, err := Split(df, DefaultTestFraction, DefaultSeed)
	assert.NoError(t, err)

	if diff := cmp.Diff(train1.Records(), train2.Records()); diff != "" {
		t.Errorf("train mismatch (-first +second):\n%s", diff)
	}
	assert.Equal(t, validate1.Records(), validate2.Records())
	assert.Equal(t, test1.Records(), test2.Records())

	_, _, other, err := Split(df, DefaultTestFraction, 7)
	assert.NoError(t, err)
	assert.NotEqual(t, test1.Col("id").Records(), other.Col("id").Records())
}

func TestSplitKeepsRowsIntact(t *testing.T) {
	df := makeTable(50)
	train, validate, test, err := Split(df, 0.3, DefaultSeed)
	assert.NoError(t, err)
	for _, part := range []dataframe.DataFrame{train, validate, test} {
		assert.Equal(t, df.Names(), part.Names())
		assert.Equal(t, series.Int, part.Col("value").Type())
		for i := 0; i < part.Nrow(); i++ {
			id := part.Col("id").Elem(i).String()
			value, _ := part.Col("value").Elem(i).Int()
			assert.Equal(t, fmt.Sprintf("row-%d", value/10), id)
		}
	}
}

func TestSplitInvalidFraction(t *testing.T) {
	df := makeTable(10)
	for _, fraction := range []float64{0, 1, -0.5, 1.5} {
		_, _, _, err := Split(df, fraction, DefaultSeed)
		assert.Error(t, err, fraction)
	}
}
