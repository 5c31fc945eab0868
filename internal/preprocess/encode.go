package preprocess

import (
	"fmt"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/packagewjx/eda-prep/internal/utils"
	"github.com/packagewjx/eda-prep/pkg/core"
	"github.com/pkg/errors"
	"sort"
	"strconv"
)

const (
	binaryNo  = "No"
	binaryYes = "Yes"
)

// BinaryMap 将Source列的Yes/No映射为Target列的1/0
type BinaryMap struct {
	Source string
	Target string
}

// Sentinel 将Column列中等于Value的值替换为Replacement
type Sentinel struct {
	Column      string
	Value       string
	Replacement string
}

// MapBinary 除Yes与No之外的任何值（包括缺失值）都返回ErrUnmappedValue
func MapBinary(df dataframe.DataFrame, m BinaryMap) (dataframe.DataFrame, error) {
	s, err := utils.Column(df, m.Source)
	if err != nil {
		return df, err
	}

	values := make([]int, s.Len())
	for i := 0; i < s.Len(); i++ {
		e := s.Elem(i)
		if e.IsNA() {
			return df, errors.Wrapf(core.ErrUnmappedValue, "列%s第%d行为缺失值", m.Source, i)
		}
		switch e.String() {
		case binaryNo:
			values[i] = 0
		case binaryYes:
			values[i] = 1
		default:
			return df, errors.Wrapf(core.ErrUnmappedValue, "列%s第%d行的值为[%s]", m.Source, i, e.String())
		}
	}

	return mutate(df, utils.IntSeries(m.Target, values, nil))
}

// OneHot 为每一列的每个取值生成{列名}_{取值}指示列，按排序后的第一个取值不生成。
// 缺失值所在行的指示列全部为0。指示列与已有列重名时返回ErrDuplicateColumn
func OneHot(df dataframe.DataFrame, columns []string) (dataframe.DataFrame, error) {
	if err := utils.RequireColumns(df, columns...); err != nil {
		return df, err
	}

	result := df
	for _, name := range columns {
		s := df.Col(name)
		categories := distinctValues(s)
		if len(categories) <= 1 {
			continue
		}
		for _, category := range categories[1:] {
			column := fmt.Sprintf("%s_%s", name, category)
			if utils.HasColumn(result, column) {
				return df, errors.Wrapf(core.ErrDuplicateColumn, "列%s的指示列%s已存在", name, column)
			}
			indicator := make([]int, s.Len())
			for i := 0; i < s.Len(); i++ {
				if e := s.Elem(i); !e.IsNA() && categoryLabel(e, s.Type()) == category {
					indicator[i] = 1
				}
			}
			var err error
			result, err = mutate(result, utils.IntSeries(column, indicator, nil))
			if err != nil {
				return df, err
			}
		}
	}
	return result, nil
}

func distinctValues(s series.Series) []string {
	seen := make(map[string]bool)
	result := make([]string, 0)
	for i := 0; i < s.Len(); i++ {
		e := s.Elem(i)
		if e.IsNA() {
			continue
		}
		label := categoryLabel(e, s.Type())
		if seen[label] {
			continue
		}
		seen[label] = true
		result = append(result, label)
	}

	if s.Type() == series.Int || s.Type() == series.Float {
		sort.Slice(result, func(i, j int) bool {
			a, _ := strconv.ParseFloat(result[i], 64)
			b, _ := strconv.ParseFloat(result[j], 64)
			return a < b
		})
	} else {
		sort.Strings(result)
	}
	return result
}

// 浮点取值使用最短表示，1.0写为1
func categoryLabel(e series.Element, t series.Type) string {
	if t == series.Float {
		return strconv.FormatFloat(e.Float(), 'g', -1, 64)
	}
	return e.String()
}

func DropColumns(df dataframe.DataFrame, columns []string) (dataframe.DataFrame, error) {
	if len(columns) == 0 {
		return df, nil
	}
	if err := utils.RequireColumns(df, columns...); err != nil {
		return df, err
	}
	result := df.Drop(columns)
	if result.Err != nil {
		return df, errors.Wrap(result.Err, "删除列出错")
	}
	return result, nil
}

// ReplaceSentinel 非文本列中不会出现哨兵值，原样返回
func ReplaceSentinel(df dataframe.DataFrame, sentinel Sentinel) (dataframe.DataFrame, error) {
	s, err := utils.Column(df, sentinel.Column)
	if err != nil {
		return df, err
	}
	if s.Type() != series.String {
		return df, nil
	}

	records := make([]string, s.Len())
	replaced := 0
	for i := 0; i < s.Len(); i++ {
		e := s.Elem(i)
		switch {
		case e.IsNA():
			records[i] = core.MissingValue
		case e.String() == sentinel.Value:
			records[i] = sentinel.Replacement
			replaced++
		default:
			records[i] = e.String()
		}
	}
	if replaced > 0 {
		logger.Printf("列%s中替换了%d个值[%s]\n", sentinel.Column, replaced, sentinel.Value)
	}
	return mutate(df, series.New(records, series.String, sentinel.Column))
}

// ToNumeric 将各列转换为浮点列，列的位置不变
func ToNumeric(df dataframe.DataFrame, columns []string) (dataframe.DataFrame, error) {
	result := df
	for _, name := range columns {
		s, err := utils.Column(df, name)
		if err != nil {
			return df, err
		}
		values, err := utils.FloatValues(s)
		if err != nil {
			return df, err
		}
		result, err = mutate(result, utils.FloatSeries(name, values))
		if err != nil {
			return df, err
		}
	}
	return result, nil
}

func mutate(df dataframe.DataFrame, s series.Series) (dataframe.DataFrame, error) {
	result := df.Mutate(s)
	if result.Err != nil {
		return df, errors.Wrapf(result.Err, "写入列%s出错", s.Name)
	}
	return result, nil
}
