package classify

import (
	"encoding/csv"
	"github.com/go-gota/gota/dataframe"
	"github.com/packagewjx/eda-prep/internal/utils"
	"github.com/pkg/errors"
	"io"
	"log"
	"math"
	"strconv"
)

const ClassColumn = "cluster"

// OutputResult header为nil时不输出表头
func OutputResult(data [][]float32, header []string, output io.Writer, precision int) error {
	writer := csv.NewWriter(output)
	if header != nil {
		if err := writer.Write(header); err != nil {
			return errors.Wrap(err, "写入表头错误")
		}
	}
	for _, datum := range data {
		record := make([]string, len(datum))
		for i, f := range datum {
			record[i] = strconv.FormatFloat(float64(f), 'f', precision, 32)
		}
		err := writer.Write(record)
		if err != nil {
			return errors.Wrap(err, "写入数据错误")
		}
	}

	writer.Flush()
	return writer.Error()
}

// FrameToMatrix 按行返回columns的数据，缺失值记为0
func FrameToMatrix(df dataframe.DataFrame, columns []string) ([][]float32, error) {
	values, err := utils.FloatColumns(df, columns)
	if err != nil {
		return nil, err
	}

	data := make([][]float32, df.Nrow())
	for r := range data {
		datum := make([]float32, len(columns))
		for c := range columns {
			f := values[c][r]
			if math.IsNaN(f) {
				log.Printf("第%d行列%s数据缺失，记为0", r, columns[c])
				f = 0
			}
			datum[c] = float32(f)
		}
		data[r] = datum
	}
	return data, nil
}

// AppendClass 追加cluster列
func AppendClass(df dataframe.DataFrame, class []int) (dataframe.DataFrame, error) {
	result := df.Mutate(utils.IntSeries(ClassColumn, class, nil))
	if result.Err != nil {
		return df, errors.Wrap(result.Err, "写入类别出错")
	}
	return result, nil
}
