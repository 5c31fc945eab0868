package preprocess

import (
	"github.com/go-gota/gota/series"
	"github.com/packagewjx/eda-prep/internal/utils"
	"github.com/packagewjx/eda-prep/pkg/core"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestMapBinary(t *testing.T) {
	df, err := utils.RecordsToTable([][]string{{"churn"}, {"Yes"}, {"No"}, {"Yes"}})
	assert.NoError(t, err)

	result, err := MapBinary(df, BinaryMap{Source: "churn", Target: "has_churned"})
	assert.NoError(t, err)
	assert.Equal(t, series.Int, result.Col("has_churned").Type())
	ints, err := result.Col("has_churned").Int()
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 0, 1}, ints)
	// 原表不变
	assert.False(t, utils.HasColumn(df, "has_churned"))

	df, _ = utils.RecordsToTable([][]string{{"churn"}, {"Yes"}, {"maybe"}})
	_, err = MapBinary(df, BinaryMap{Source: "churn", Target: "has_churned"})
	assert.True(t, errors.Is(err, core.ErrUnmappedValue))

	df, _ = utils.RecordsToTable([][]string{{"churn"}, {"Yes"}, {""}})
	_, err = MapBinary(df, BinaryMap{Source: "churn", Target: "has_churned"})
	assert.True(t, errors.Is(err, core.ErrUnmappedValue))

	_, err = MapBinary(df, BinaryMap{Source: "nothing", Target: "x"})
	assert.True(t, errors.Is(err, core.ErrMissingColumn))
}

func TestOneHot(t *testing.T) {
	df, err := utils.RecordsToTable([][]string{
		{"id", "contract_type"},
		{"a", "Two year"},
		{"b", "Month-to-month"},
		{"c", "One year"},
		{"d", ""},
	})
	assert.NoError(t, err)

	result, err := OneHot(df, []string{"contract_type"})
	assert.NoError(t, err)
	result, err = DropColumns(result, []string{"contract_type"})
	assert.NoError(t, err)

	// 3个取值生成2列，Month-to-month作为参照被省略
	assert.Equal(t, []string{"id", "contract_type_One year", "contract_type_Two year"}, result.Names())
	oneYear, _ := result.Col("contract_type_One year").Int()
	twoYear, _ := result.Col("contract_type_Two year").Int()
	assert.Equal(t, []int{0, 0, 1, 0}, oneYear)
	assert.Equal(t, []int{1, 0, 0, 0}, twoYear)
}

func TestOneHotNumericCategories(t *testing.T) {
	df, _ := utils.RecordsToTable([][]string{{"fips"}, {"6111"}, {"6037"}, {"6059"}})
	result, err := OneHot(df, []string{"fips"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"fips", "fips_6059", "fips_6111"}, result.Names())

	single, _ := utils.RecordsToTable([][]string{{"g"}, {"x"}, {"x"}})
	result, err = OneHot(single, []string{"g"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"g"}, result.Names())
}

func TestOneHotFloatCategories(t *testing.T) {
	df, _ := utils.RecordsToTable([][]string{{"bathroomcnt"}, {"2.0"}, {"1.5"}, {"1.0"}, {"2.0"}, {"NaN"}})
	assert.Equal(t, series.Float, df.Col("bathroomcnt").Type())

	result, err := OneHot(df, []string{"bathroomcnt"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"bathroomcnt", "bathroomcnt_1.5", "bathroomcnt_2"}, result.Names())
	two, _ := result.Col("bathroomcnt_2").Int()
	assert.Equal(t, []int{1, 0, 0, 1, 0}, two)
}

func TestOneHotColumnExists(t *testing.T) {
	df, _ := utils.RecordsToTable([][]string{
		{"contract_type", "contract_type_One year"},
		{"Month-to-month", "kept"},
		{"One year", "kept"},
	})
	result, err := OneHot(df, []string{"contract_type"})
	assert.True(t, errors.Is(err, core.ErrDuplicateColumn))
	assert.Equal(t, df.Names(), result.Names())
	assert.Equal(t, "kept", result.Col("contract_type_One year").Elem(1).String())
}

func TestReplaceSentinelAndToNumeric(t *testing.T) {
	df, err := utils.RecordsToTable([][]string{{"total_charges"}, {"29.85"}, {" "}, {"56.95"}, {"NaN"}})
	assert.NoError(t, err)
	assert.Equal(t, series.String, df.Col("total_charges").Type())

	_, err = ToNumeric(df, []string{"total_charges"})
	assert.True(t, errors.Is(err, core.ErrTypeConversion))

	result, err := ReplaceSentinel(df, Sentinel{Column: "total_charges", Value: " ", Replacement: "0"})
	assert.NoError(t, err)
	result, err = ToNumeric(result, []string{"total_charges"})
	assert.NoError(t, err)

	s := result.Col("total_charges")
	assert.Equal(t, series.Float, s.Type())
	assert.Equal(t, 29.85, s.Elem(0).Float())
	assert.Equal(t, 0.0, s.Elem(1).Float())
	assert.Equal(t, 56.95, s.Elem(2).Float())
	assert.True(t, s.Elem(3).IsNA())

	numeric, _ := utils.RecordsToTable([][]string{{"x"}, {"1"}})
	unchanged, err := ReplaceSentinel(numeric, Sentinel{Column: "x", Value: " ", Replacement: "0"})
	assert.NoError(t, err)
	assert.Equal(t, numeric.Records(), unchanged.Records())
}

func TestDropColumnsMissing(t *testing.T) {
	df, _ := utils.RecordsToTable([][]string{{"a"}, {"1"}})
	_, err := DropColumns(df, []string{"b"})
	assert.True(t, errors.Is(err, core.ErrMissingColumn))

	result, err := DropColumns(df, nil)
	assert.NoError(t, err)
	assert.Equal(t, []string{"a"}, result.Names())
}
