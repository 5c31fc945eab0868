package preprocess

import (
	"fmt"
	"github.com/go-gota/gota/dataframe"
	"github.com/packagewjx/eda-prep/internal/utils"
	"github.com/packagewjx/eda-prep/pkg/core"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"io"
	"math"
	"sort"
)

type ScalerKind string

const (
	MinMax   ScalerKind = "minmax"
	Standard ScalerKind = "standard"
	Robust   ScalerKind = "robust"
)

const ScaledSuffix = "_scaled"

// ScaleParam 变换为 (x - Center) / Scale
type ScaleParam struct {
	Center float64
	Scale  float64
}

// Scaler 只能在训练集上Fit一次，之后Transform不会修改参数
type Scaler interface {
	Fit(columns [][]float64) error
	Transform(columns [][]float64) ([][]float64, error)
	Params() []ScaleParam
}

func NewScaler(kind ScalerKind) (Scaler, error) {
	switch kind {
	case MinMax:
		return &affineScaler{kind: kind, estimate: minMaxParam}, nil
	case Standard:
		return &affineScaler{kind: kind, estimate: standardParam}, nil
	case Robust:
		return &affineScaler{kind: kind, estimate: robustParam}, nil
	default:
		return nil, fmt.Errorf("不支持的缩放方式%s，可选值：%s、%s、%s", kind, MinMax, Standard, Robust)
	}
}

type affineScaler struct {
	kind     ScalerKind
	estimate func(sorted []float64) ScaleParam
	params   []ScaleParam
}

func (a *affineScaler) Fit(columns [][]float64) error {
	params := make([]ScaleParam, len(columns))
	for i, column := range columns {
		observed := make([]float64, 0, len(column))
		for _, v := range column {
			if !math.IsNaN(v) {
				observed = append(observed, v)
			}
		}
		if len(observed) == 0 {
			return errors.Wrapf(core.ErrNoObservedValues, "第%d列", i)
		}
		sort.Float64s(observed)

		params[i] = a.estimate(observed)
		if params[i].Scale == 0 {
			params[i].Scale = 1
		}
	}
	a.params = params
	return nil
}

func (a *affineScaler) Transform(columns [][]float64) ([][]float64, error) {
	if a.params == nil {
		return nil, errors.Wrapf(core.ErrNotFitted, "%s缩放器", a.kind)
	}
	if len(columns) != len(a.params) {
		return nil, fmt.Errorf("拟合时有%d列，变换时有%d列", len(a.params), len(columns))
	}

	result := make([][]float64, len(columns))
	for i, column := range columns {
		p := a.params[i]
		result[i] = make([]float64, len(column))
		for j, v := range column {
			result[i][j] = (v - p.Center) / p.Scale
		}
	}
	return result, nil
}

func (a *affineScaler) Params() []ScaleParam {
	result := make([]ScaleParam, len(a.params))
	copy(result, a.params)
	return result
}

func minMaxParam(sorted []float64) ScaleParam {
	lo := floats.Min(sorted)
	return ScaleParam{Center: lo, Scale: floats.Max(sorted) - lo}
}

// 总体标准差
func standardParam(sorted []float64) ScaleParam {
	mean, variance := stat.MeanVariance(sorted, nil)
	n := float64(len(sorted))
	if len(sorted) == 1 {
		return ScaleParam{Center: mean}
	}
	return ScaleParam{Center: mean, Scale: math.Sqrt(variance * (n - 1) / n)}
}

// 中位数与四分位距
func robustParam(sorted []float64) ScaleParam {
	median := stat.Quantile(0.5, stat.Empirical, sorted, nil)
	q1 := stat.Quantile(0.25, stat.Empirical, sorted, nil)
	q3 := stat.Quantile(0.75, stat.Empirical, sorted, nil)
	return ScaleParam{Center: median, Scale: q3 - q1}
}

// AddScaledColumns 仅使用train拟合scaler，再分别变换三个分区，结果以{列名}_scaled追加到各分区
func AddScaledColumns(train, validate, test dataframe.DataFrame, scaler Scaler, columns []string) (
	dataframe.DataFrame, dataframe.DataFrame, dataframe.DataFrame, error) {
	trainColumns, err := utils.FloatColumns(train, columns)
	if err != nil {
		return train, validate, test, errors.Wrap(err, "读取训练集出错")
	}
	if err = scaler.Fit(trainColumns); err != nil {
		return train, validate, test, errors.Wrap(err, "拟合缩放器出错")
	}

	partitions := []dataframe.DataFrame{train, validate, test}
	for i, partition := range partitions {
		partitions[i], err = appendScaled(partition, scaler, columns)
		if err != nil {
			return train, validate, test, err
		}
	}
	return partitions[0], partitions[1], partitions[2], nil
}

func appendScaled(df dataframe.DataFrame, scaler Scaler, columns []string) (dataframe.DataFrame, error) {
	values, err := utils.FloatColumns(df, columns)
	if err != nil {
		return df, err
	}
	scaled, err := scaler.Transform(values)
	if err != nil {
		return df, err
	}

	result := df
	for i, name := range columns {
		if result, err = mutate(result, utils.FloatSeries(name+ScaledSuffix, scaled[i])); err != nil {
			return df, err
		}
	}
	return result, nil
}

// NormalizeTable 在同一张表上拟合并追加缩放列
func NormalizeTable(in io.Reader, out io.Writer, kind ScalerKind, columns []string) error {
	logger.Println("正在读取数据")
	df, err := utils.ReadTable(in)
	if err != nil {
		return errors.Wrap(err, "读取数据失败")
	}
	scaler, err := NewScaler(kind)
	if err != nil {
		return err
	}
	values, err := utils.FloatColumns(df, columns)
	if err != nil {
		return err
	}
	if err = scaler.Fit(values); err != nil {
		return err
	}
	if df, err = appendScaled(df, scaler, columns); err != nil {
		return err
	}
	return errors.Wrap(utils.WriteTable(out, df), "输出文件错误")
}
