package utils

import (
	"encoding/csv"
	"fmt"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/packagewjx/eda-prep/pkg/core"
	"github.com/pkg/errors"
	"io"
	"math"
	"strconv"
	"strings"
)

// 读取时视为缺失值的字符串。不包含" "，空格在telco数据中有单独的含义
var NaNValues = []string{"", "NA", "NaN", "<nil>"}

// ReadTable 读取带表头的CSV。数据库与缓存文件都经过同样的类型推断，保证两者的列类型一致
func ReadTable(in io.Reader) (dataframe.DataFrame, error) {
	records, err := csv.NewReader(in).ReadAll()
	if err != nil {
		return dataframe.DataFrame{}, errors.Wrap(err, "解析CSV出错")
	}
	df, err := RecordsToTable(records)
	return df, errors.Wrap(err, "解析CSV出错")
}

// RecordsToTable 第一行为表头。只有表头时返回0行的文本列
func RecordsToTable(records [][]string) (dataframe.DataFrame, error) {
	if len(records) == 1 {
		return EmptyTable(records[0]), nil
	}
	df := dataframe.LoadRecords(records, dataframe.NaNValues(NaNValues))
	if df.Err != nil {
		return df, errors.Wrap(df.Err, "构建数据表出错")
	}
	return df, nil
}

// EmptyTable 没有数据行时无法推断类型，全部列按文本处理
func EmptyTable(header []string) dataframe.DataFrame {
	columns := make([]series.Series, len(header))
	for i, name := range header {
		columns[i] = series.New([]string{}, series.String, name)
	}
	return dataframe.New(columns...)
}

// WriteTable 浮点数按最短的精确表示写出，整数值补上".0"，重新读取时类型与数值保持不变
func WriteTable(out io.Writer, df dataframe.DataFrame) error {
	if df.Err != nil {
		return df.Err
	}

	names := df.Names()
	records := make([][]string, df.Nrow()+1)
	records[0] = names
	for r := 1; r < len(records); r++ {
		records[r] = make([]string, len(names))
	}
	for c, name := range names {
		s := df.Col(name)
		for i := 0; i < s.Len(); i++ {
			records[i+1][c] = cellText(s.Elem(i), s.Type())
		}
	}

	w := csv.NewWriter(out)
	if err := w.WriteAll(records); err != nil {
		return errors.Wrap(err, "写出CSV出错")
	}
	return nil
}

func cellText(e series.Element, t series.Type) string {
	if e.IsNA() {
		return core.MissingValue
	}
	if t != series.Float {
		return e.String()
	}
	text := strconv.FormatFloat(e.Float(), 'g', -1, 64)
	if !strings.ContainsAny(text, ".eEnN") {
		text += ".0"
	}
	return text
}

func HasColumn(df dataframe.DataFrame, name string) bool {
	for _, n := range df.Names() {
		if n == name {
			return true
		}
	}
	return false
}

func RequireColumns(df dataframe.DataFrame, names ...string) error {
	for _, name := range names {
		if !HasColumn(df, name) {
			return errors.Wrapf(core.ErrMissingColumn, "列%s不存在，现有列：%v", name, df.Names())
		}
	}
	return nil
}

func Column(df dataframe.DataFrame, name string) (series.Series, error) {
	if err := RequireColumns(df, name); err != nil {
		return series.Series{}, err
	}
	return df.Col(name), nil
}

// FloatValues 将一列转换为float64，缺失值为NaN。文本列逐个解析，无法解析时返回ErrTypeConversion
func FloatValues(s series.Series) ([]float64, error) {
	if s.Type() != series.String {
		return s.Float(), nil
	}

	result := make([]float64, s.Len())
	for i := 0; i < s.Len(); i++ {
		e := s.Elem(i)
		if e.IsNA() {
			result[i] = math.NaN()
			continue
		}
		f, err := strconv.ParseFloat(e.String(), 64)
		if err != nil {
			return nil, errors.Wrap(core.ErrTypeConversion,
				fmt.Sprintf("列%s第%d行的值[%s]不是数字", s.Name, i, e.String()))
		}
		result[i] = f
	}
	return result, nil
}

// FloatColumns 按列返回数据，result[i]为columns[i]的全部值
func FloatColumns(df dataframe.DataFrame, columns []string) ([][]float64, error) {
	result := make([][]float64, len(columns))
	for i, name := range columns {
		s, err := Column(df, name)
		if err != nil {
			return nil, err
		}
		result[i], err = FloatValues(s)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// FloatSeries NaN写为缺失值
func FloatSeries(name string, values []float64) series.Series {
	records := make([]string, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			records[i] = core.MissingValue
		} else {
			records[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
	}
	return series.New(records, series.Float, name)
}

// IntSeries na[i]为true时写为缺失值，na可以为nil
func IntSeries(name string, values []int, na []bool) series.Series {
	records := make([]string, len(values))
	for i, v := range values {
		if na != nil && na[i] {
			records[i] = core.MissingValue
		} else {
			records[i] = strconv.Itoa(v)
		}
	}
	return series.New(records, series.Int, name)
}
