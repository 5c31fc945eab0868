package export

import (
	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/memory"
	"github.com/apache/arrow/go/v17/parquet"
	"github.com/apache/arrow/go/v17/parquet/compress"
	"github.com/apache/arrow/go/v17/parquet/pqarrow"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/pkg/errors"
	"os"
)

func writeParquet(dir string, partitions *Partitions) ([]string, error) {
	files := make([]string, 0, 3)
	for _, frame := range partitions.frames() {
		path := partitionPath(dir, partitions, frame.name, Parquet)
		if err := writeParquetFile(path, frame.df); err != nil {
			return nil, err
		}
		files = append(files, path)
	}
	return files, nil
}

func arrowSchema(df dataframe.DataFrame) *arrow.Schema {
	fields := make([]arrow.Field, 0, df.Ncol())
	for _, name := range df.Names() {
		var typ arrow.DataType
		switch df.Col(name).Type() {
		case series.Int:
			typ = arrow.PrimitiveTypes.Int64
		case series.Float:
			typ = arrow.PrimitiveTypes.Float64
		case series.Bool:
			typ = arrow.FixedWidthTypes.Boolean
		default:
			typ = arrow.BinaryTypes.String
		}
		fields = append(fields, arrow.Field{Name: name, Type: typ, Nullable: true})
	}
	return arrow.NewSchema(fields, nil)
}

func writeParquetFile(path string, df dataframe.DataFrame) error {
	if df.Err != nil {
		return df.Err
	}
	schema := arrowSchema(df)

	builder := array.NewRecordBuilder(memory.NewGoAllocator(), schema)
	defer builder.Release()
	for i, name := range df.Names() {
		appendColumn(builder.Field(i), df.Col(name))
	}
	record := builder.NewRecord()
	defer record.Release()

	out, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "创建文件%s出错", path)
	}
	// 由writer负责关闭out
	writer, err := pqarrow.NewFileWriter(
		schema,
		out,
		parquet.NewWriterProperties(parquet.WithCompression(compress.Codecs.Gzip)),
		pqarrow.DefaultWriterProps(),
	)
	if err != nil {
		_ = out.Close()
		return errors.Wrapf(err, "创建parquet写入器出错")
	}
	if err = writer.Write(record); err != nil {
		_ = writer.Close()
		return errors.Wrapf(err, "写入%s出错", path)
	}
	return errors.Wrapf(writer.Close(), "关闭%s出错", path)
}

func appendColumn(b array.Builder, s series.Series) {
	for i := 0; i < s.Len(); i++ {
		e := s.Elem(i)
		if e.IsNA() {
			b.AppendNull()
			continue
		}
		switch builder := b.(type) {
		case *array.Int64Builder:
			v, _ := e.Int()
			builder.Append(int64(v))
		case *array.Float64Builder:
			builder.Append(e.Float())
		case *array.BooleanBuilder:
			v, _ := e.Bool()
			builder.Append(v)
		case *array.StringBuilder:
			builder.Append(e.String())
		}
	}
}
