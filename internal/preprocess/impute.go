package preprocess

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/packagewjx/eda-prep/internal/utils"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"
	"io"
	"math"
)

func Impute() Preprocessor {
	return PreprocessorFunc(ImputeMeans)
}

// ImputeMeans 用每一列自身已观测值的均值填充该列的缺失值，填充后的列均为浮点列。
// 没有缺失值的列不做转换，整列缺失时保持原样
func ImputeMeans(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	result := df
	for _, name := range df.Names() {
		s := df.Col(name)
		if !hasMissing(s) {
			continue
		}
		values, err := utils.FloatValues(s)
		if err != nil {
			return df, err
		}

		observed := make([]float64, 0, len(values))
		for _, v := range values {
			if !math.IsNaN(v) {
				observed = append(observed, v)
			}
		}
		if len(observed) == 0 {
			logger.Printf("列%s全部为缺失值，无法填充\n", name)
			continue
		}

		mean := stat.Mean(observed, nil)
		logger.Printf("列%s有%d个缺失值，使用均值%f填充\n", name, len(values)-len(observed), mean)
		for i, v := range values {
			if math.IsNaN(v) {
				values[i] = mean
			}
		}
		if result, err = mutate(result, utils.FloatSeries(name, values)); err != nil {
			return df, err
		}
	}
	return result, nil
}

func hasMissing(s series.Series) bool {
	for i := 0; i < s.Len(); i++ {
		if s.Elem(i).IsNA() {
			return true
		}
	}
	return false
}

func ImputeMissingValues(in io.Reader, out io.Writer) error {
	df, err := utils.ReadTable(in)
	if err != nil {
		return errors.Wrap(err, "读取数据失败")
	}
	df, err = ImputeMeans(df)
	if err != nil {
		return err
	}
	return errors.Wrap(utils.WriteTable(out, df), "输出文件错误")
}

// MonthsToYears 新增列target，值为source列的月数整除12
func MonthsToYears(df dataframe.DataFrame, source, target string) (dataframe.DataFrame, error) {
	s, err := utils.Column(df, source)
	if err != nil {
		return df, err
	}
	values, err := utils.FloatValues(s)
	if err != nil {
		return df, err
	}

	years := make([]int, len(values))
	na := make([]bool, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			na[i] = true
			continue
		}
		years[i] = int(math.Floor(v / 12))
	}
	return mutate(df, utils.IntSeries(target, years, na))
}

func TenureYears() Preprocessor {
	return PreprocessorFunc(func(df dataframe.DataFrame) (dataframe.DataFrame, error) {
		return MonthsToYears(df, "tenure", "tenure_years")
	})
}
