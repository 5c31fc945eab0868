package export

import (
	"fmt"
	"github.com/go-gota/gota/dataframe"
	"github.com/packagewjx/eda-prep/internal/utils"
	"github.com/packagewjx/eda-prep/pkg/core"
	"github.com/pkg/errors"
	"log"
	"os"
	"path/filepath"
)

type Format string

const (
	CSV     Format = "csv"
	XLSX    Format = "xlsx"
	Parquet Format = "parquet"
)

const (
	PartitionTrain    = "train"
	PartitionValidate = "validate"
	PartitionTest     = "test"
)

var logger = log.New(os.Stdout, "export: ", log.LstdFlags|log.Lshortfile|log.Lmsgprefix)

type Partitions struct {
	// 输出文件名前缀，一般为数据集名称
	Name     string
	Train    dataframe.DataFrame
	Validate dataframe.DataFrame
	Test     dataframe.DataFrame
}

type namedFrame struct {
	name string
	df   dataframe.DataFrame
}

func (p *Partitions) frames() []namedFrame {
	return []namedFrame{
		{name: PartitionTrain, df: p.Train},
		{name: PartitionValidate, df: p.Validate},
		{name: PartitionTest, df: p.Test},
	}
}

// Write 将三个分区写入dir，返回写出的文件路径
func Write(dir string, format Format, partitions *Partitions) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, core.Categorize(core.ErrIO, errors.Wrapf(err, "创建目录%s出错", dir))
	}

	var files []string
	var err error
	switch format {
	case CSV:
		files, err = writeCSV(dir, partitions)
	case XLSX:
		var file string
		file, err = writeXLSX(dir, partitions)
		files = []string{file}
	case Parquet:
		files, err = writeParquet(dir, partitions)
	default:
		return nil, fmt.Errorf("不支持的输出格式%s，可选值：%s、%s、%s", format, CSV, XLSX, Parquet)
	}
	if err != nil {
		return nil, core.Categorize(core.ErrIO, err)
	}

	for _, file := range files {
		logger.Printf("已输出%s\n", file)
	}
	return files, nil
}

func partitionPath(dir string, partitions *Partitions, partition string, ext Format) string {
	return filepath.Join(dir, fmt.Sprintf("%s_%s.%s", partitions.Name, partition, ext))
}

func writeCSV(dir string, partitions *Partitions) ([]string, error) {
	files := make([]string, 0, 3)
	for _, frame := range partitions.frames() {
		path := partitionPath(dir, partitions, frame.name, CSV)
		if err := writeCSVFile(path, frame.df); err != nil {
			return nil, err
		}
		files = append(files, path)
	}
	return files, nil
}

func writeCSVFile(path string, df dataframe.DataFrame) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "创建文件%s出错", path)
	}
	defer func() {
		closeErr := f.Close()
		if err == nil && closeErr != nil {
			err = errors.Wrapf(closeErr, "关闭文件%s出错", path)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	counter := &utils.WriterCounter{Writer: f}
	if err = utils.WriteTable(counter, df); err != nil {
		return errors.Wrapf(err, "写入文件%s出错", path)
	}
	logger.Printf("%s写入%d字节\n", path, counter.Count)
	return nil
}
