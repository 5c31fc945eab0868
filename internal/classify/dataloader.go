package classify

import (
	"fmt"
	"github.com/packagewjx/eda-prep/internal/utils"
	"github.com/pkg/errors"
	"io"
)

type DataFileLoader interface {
	// Load 读取columns指定的列，columns为空时读取全部列
	Load(in io.Reader, columns []string) ([][]float32, error)
}

type DataFormat string

const (
	CSV = DataFormat("csv")
)

func NewDataLoader(format DataFormat) (DataFileLoader, error) {
	switch format {
	case CSV:
		return &csvLoader{}, nil
	default:
		return nil, fmt.Errorf("不支持的数据格式%s", format)
	}
}

type csvLoader struct {
}

func (c *csvLoader) Load(in io.Reader, columns []string) ([][]float32, error) {
	df, err := utils.ReadTable(in)
	if err != nil {
		return nil, errors.Wrap(err, "读取数据出错")
	}
	if len(columns) == 0 {
		columns = df.Names()
	}
	return FrameToMatrix(df, columns)
}
