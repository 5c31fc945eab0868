package utils

import (
	"github.com/go-gota/gota/series"
	"github.com/packagewjx/eda-prep/pkg/core"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"math"
	"strings"
	"testing"
)

func TestReadTable(t *testing.T) {
	df, err := ReadTable(strings.NewReader("id,tenure,total_charges,churn\n" +
		"a,1,29.85,No\n" +
		"b,,\" \",Yes\n" +
		"c,3,56.95,No\n"))
	assert.NoError(t, err)
	assert.Equal(t, 3, df.Nrow())
	assert.Equal(t, series.Int, df.Col("tenure").Type())
	assert.True(t, df.Col("tenure").Elem(1).IsNA())
	// 含有空格的列保持为文本
	assert.Equal(t, series.String, df.Col("total_charges").Type())
	assert.Equal(t, " ", df.Col("total_charges").Elem(1).String())
}

func TestRecordsRoundTrip(t *testing.T) {
	df, err := RecordsToTable([][]string{
		{"x", "y"},
		{"1.5", "a"},
		{"NaN", "b"},
	})
	assert.NoError(t, err)

	builder := &strings.Builder{}
	assert.NoError(t, WriteTable(builder, df))

	again, err := ReadTable(strings.NewReader(builder.String()))
	assert.NoError(t, err)
	assert.Equal(t, df.Names(), again.Names())
	assert.Equal(t, df.Records(), again.Records())
}

func TestReadTableHeaderOnly(t *testing.T) {
	df, err := ReadTable(strings.NewReader("bedroomcnt,taxamount\n"))
	assert.NoError(t, err)
	assert.Equal(t, 0, df.Nrow())
	assert.Equal(t, []string{"bedroomcnt", "taxamount"}, df.Names())
	assert.Equal(t, series.String, df.Col("taxamount").Type())

	builder := &strings.Builder{}
	assert.NoError(t, WriteTable(builder, df))
	assert.Equal(t, "bedroomcnt,taxamount\n", builder.String())
}

func TestWriteTableFloatText(t *testing.T) {
	df, err := RecordsToTable([][]string{
		{"x", "n"},
		{"0.0000001", "1"},
		{"0.1234567891", "2"},
		{"2.0", "NaN"},
		{"NaN", "4"},
	})
	assert.NoError(t, err)

	builder := &strings.Builder{}
	assert.NoError(t, WriteTable(builder, df))
	assert.Equal(t, "x,n\n1e-07,1\n0.1234567891,2\n2.0,NaN\nNaN,4\n", builder.String())

	again, err := ReadTable(strings.NewReader(builder.String()))
	assert.NoError(t, err)
	assert.Equal(t, series.Float, again.Col("x").Type())
	assert.Equal(t, series.Int, again.Col("n").Type())
	assert.Equal(t, 1e-7, again.Col("x").Elem(0).Float())
	assert.Equal(t, 0.1234567891, again.Col("x").Elem(1).Float())
	assert.True(t, again.Col("x").Elem(3).IsNA())
}

func TestFloatValues(t *testing.T) {
	s := series.New([]string{"1", "NaN", "2.5"}, series.String, "x")
	values, err := FloatValues(s)
	assert.NoError(t, err)
	assert.Equal(t, 1.0, values[0])
	assert.True(t, math.IsNaN(values[1]))
	assert.Equal(t, 2.5, values[2])

	s = series.New([]string{"1", "abc"}, series.String, "x")
	_, err = FloatValues(s)
	assert.True(t, errors.Is(err, core.ErrTypeConversion))

	s = series.New([]int{1, 2}, series.Int, "y")
	values, err = FloatValues(s)
	assert.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, values)
}

func TestRequireColumns(t *testing.T) {
	df, _ := RecordsToTable([][]string{{"a", "b"}, {"1", "2"}})
	assert.NoError(t, RequireColumns(df, "a", "b"))
	err := RequireColumns(df, "a", "c")
	assert.True(t, errors.Is(err, core.ErrMissingColumn))

	_, err = FloatColumns(df, []string{"c"})
	assert.True(t, errors.Is(err, core.ErrMissingColumn))
}

func TestSeriesBuilders(t *testing.T) {
	s := FloatSeries("f", []float64{1.25, math.NaN(), 0.1})
	assert.Equal(t, series.Float, s.Type())
	assert.Equal(t, 1.25, s.Elem(0).Float())
	assert.True(t, s.Elem(1).IsNA())
	assert.Equal(t, 0.1, s.Elem(2).Float())

	i := IntSeries("i", []int{3, 0, 7}, []bool{false, true, false})
	assert.Equal(t, series.Int, i.Type())
	assert.Equal(t, "f", s.Name)
	assert.True(t, i.Elem(1).IsNA())
	assert.Equal(t, []string{"3", "NaN", "7"}, i.Records())
}
