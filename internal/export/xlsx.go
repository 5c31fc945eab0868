package export

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
	"path/filepath"
)

const defaultSheet = "Sheet1"

// writeXLSX 每个分区一个工作表，缺失值为空单元格
func writeXLSX(dir string, partitions *Partitions) (string, error) {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	for _, frame := range partitions.frames() {
		if _, err := f.NewSheet(frame.name); err != nil {
			return "", errors.Wrapf(err, "创建工作表%s出错", frame.name)
		}
		if err := writeSheet(f, frame.name, frame.df); err != nil {
			return "", err
		}
	}
	f.DeleteSheet(defaultSheet)
	f.SetActiveSheet(0)

	path := filepath.Join(dir, partitions.Name+"."+string(XLSX))
	if err := f.SaveAs(path); err != nil {
		return "", errors.Wrapf(err, "保存%s出错", path)
	}
	return path, nil
}

func writeSheet(f *excelize.File, sheet string, df dataframe.DataFrame) error {
	names := df.Names()
	header := make([]interface{}, len(names))
	for i, name := range names {
		header[i] = name
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return errors.Wrapf(err, "写入工作表%s表头出错", sheet)
	}

	columns := make([]series.Series, len(names))
	for i, name := range names {
		columns[i] = df.Col(name)
	}
	row := make([]interface{}, len(names))
	for r := 0; r < df.Nrow(); r++ {
		for c, s := range columns {
			row[c] = cellValue(s.Elem(r), s.Type())
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err = f.SetSheetRow(sheet, cell, &row); err != nil {
			return errors.Wrapf(err, "写入工作表%s第%d行出错", sheet, r+2)
		}
	}
	return nil
}

func cellValue(e series.Element, t series.Type) interface{} {
	if e.IsNA() {
		return ""
	}
	switch t {
	case series.Int:
		v, _ := e.Int()
		return v
	case series.Float:
		return e.Float()
	case series.Bool:
		v, _ := e.Bool()
		return v
	default:
		return e.String()
	}
}
