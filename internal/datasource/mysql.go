package datasource

import (
	"context"
	"database/sql"
	"fmt"
	"github.com/go-gota/gota/dataframe"
	"github.com/packagewjx/eda-prep/pkg/core"
	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"log"
	"os"
)

var logger = log.New(os.Stdout, "datasource: ", log.LstdFlags|log.Lshortfile|log.Lmsgprefix)

type mysqlSource struct {
	descriptor Descriptor
}

var _ Source = &mysqlSource{}

func (m *mysqlSource) Fetch(ctx context.Context, query string) (dataframe.DataFrame, error) {
	logger.Printf("连接数据库%s\n", m.descriptor.Redacted())
	db, err := gorm.Open(mysql.Open(m.descriptor.DSN()), &gorm.Config{
		Logger: gormlogger.New(log.New(os.Stdout, "", 0), gormlogger.Config{
			LogLevel: gormlogger.Silent,
		}),
	})
	if err != nil {
		return dataframe.DataFrame{}, errors.Wrap(core.Categorize(core.ErrDataSource, err), "连接数据库错误")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return dataframe.DataFrame{}, errors.Wrap(core.Categorize(core.ErrDataSource, err), "获取数据库连接错误")
	}
	defer func() {
		_ = sqlDB.Close()
	}()

	rows, err := db.WithContext(ctx).Raw(query).Rows()
	if err != nil {
		return dataframe.DataFrame{}, errors.Wrap(core.Categorize(core.ErrDataSource, err), "执行查询错误")
	}
	defer func() {
		_ = rows.Close()
	}()

	columns, data, err := scanRows(rows)
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	logger.Printf("查询得到%d行%d列\n", len(data), len(columns))

	return BuildTable(columns, data)
}

func scanRows(rows *sql.Rows) ([]string, [][]*string, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, nil, errors.Wrap(core.Categorize(core.ErrDataSource, err), "读取列名错误")
	}

	result := make([][]*string, 0, 1024)
	for rows.Next() {
		values := make([]sql.NullString, len(columns))
		dest := make([]interface{}, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, nil, errors.Wrap(core.Categorize(core.ErrDataSource, err),
				fmt.Sprintf("读取第%d行出错", len(result)))
		}

		row := make([]*string, len(columns))
		for i, v := range values {
			if v.Valid {
				s := v.String
				row[i] = &s
			}
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, errors.Wrap(core.Categorize(core.ErrDataSource, err), "遍历查询结果出错")
	}

	return columns, result, nil
}
