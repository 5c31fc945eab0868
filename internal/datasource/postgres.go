package datasource

import (
	"context"
	"github.com/go-gota/gota/dataframe"
	"github.com/jackc/pgx/v5"
	"github.com/packagewjx/eda-prep/pkg/core"
	"github.com/pkg/errors"
)

type postgresSource struct {
	descriptor Descriptor
}

var _ Source = &postgresSource{}

func (p *postgresSource) Fetch(ctx context.Context, query string) (dataframe.DataFrame, error) {
	logger.Printf("连接数据库%s\n", p.descriptor.Redacted())
	conn, err := pgx.Connect(ctx, p.descriptor.DSN())
	if err != nil {
		return dataframe.DataFrame{}, errors.Wrap(core.Categorize(core.ErrDataSource, err), "连接数据库错误")
	}
	defer func() {
		_ = conn.Close(ctx)
	}()

	// 简单协议下所有值都以文本格式返回，与MySQL一侧的处理一致
	rows, err := conn.Query(ctx, query, pgx.QueryExecModeSimpleProtocol)
	if err != nil {
		return dataframe.DataFrame{}, errors.Wrap(core.Categorize(core.ErrDataSource, err), "执行查询错误")
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	columns := make([]string, len(fields))
	for i, f := range fields {
		columns[i] = f.Name
	}

	data := make([][]*string, 0, 1024)
	for rows.Next() {
		raw := rows.RawValues()
		row := make([]*string, len(raw))
		for i, b := range raw {
			if b != nil {
				s := string(b)
				row[i] = &s
			}
		}
		data = append(data, row)
	}
	if err := rows.Err(); err != nil {
		return dataframe.DataFrame{}, errors.Wrap(core.Categorize(core.ErrDataSource, err), "遍历查询结果出错")
	}
	logger.Printf("查询得到%d行%d列\n", len(data), len(columns))

	return BuildTable(columns, data)
}
