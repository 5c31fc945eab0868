package classify

import (
	"github.com/packagewjx/eda-prep/internal/utils"
	"github.com/packagewjx/eda-prep/pkg/core"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"strings"
	"testing"
)

func TestOutputResult(t *testing.T) {
	builder := &strings.Builder{}
	data := [][]float32{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}
	err := OutputResult(data, nil, builder, 2)
	assert.NoError(t, err)
	assert.Equal(t, "1.00,2.00,3.00\n4.00,5.00,6.00\n7.00,8.00,9.00\n", builder.String())

	builder.Reset()
	err = OutputResult(data[:1], []string{"a", "b", "c"}, builder, 1)
	assert.NoError(t, err)
	assert.Equal(t, "a,b,c\n1.0,2.0,3.0\n", builder.String())
}

func TestFrameToMatrix(t *testing.T) {
	df, err := utils.RecordsToTable([][]string{
		{"id", "age", "spending_score"},
		{"1", "19", "39"},
		{"2", "", "81.5"},
	})
	assert.NoError(t, err)

	data, err := FrameToMatrix(df, []string{"age", "spending_score"})
	assert.NoError(t, err)
	assert.Equal(t, [][]float32{{19, 39}, {0, 81.5}}, data)

	_, err = FrameToMatrix(df, []string{"income"})
	assert.True(t, errors.Is(err, core.ErrMissingColumn))

	result, err := AppendClass(df, []int{1, 0})
	assert.NoError(t, err)
	assert.Equal(t, []string{"1", "0"}, result.Col(ClassColumn).Records())
	_, err = AppendClass(df, []int{1})
	assert.Error(t, err)
}

func TestLoadCsv(t *testing.T) {
	loader, err := NewDataLoader(CSV)
	assert.NoError(t, err)

	data, err := loader.Load(strings.NewReader("a,b,c\n1,2,3\n4,5,6\n"), []string{"c", "a"})
	assert.NoError(t, err)
	assert.Equal(t, [][]float32{{3, 1}, {6, 4}}, data)

	data, err = loader.Load(strings.NewReader("a,b\n1,2\n"), nil)
	assert.NoError(t, err)
	assert.Equal(t, [][]float32{{1, 2}}, data)

	_, err = loader.Load(strings.NewReader("a,b\nx,2\n"), nil)
	assert.True(t, errors.Is(err, core.ErrTypeConversion))

	_, err = NewDataLoader("json")
	assert.Error(t, err)
}
