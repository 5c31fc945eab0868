package datasource

import (
	"context"
	"fmt"
	"github.com/go-gota/gota/dataframe"
	"github.com/packagewjx/eda-prep/pkg/core"
	"github.com/pkg/errors"
)

type Source interface {
	// 执行一条查询并将全部结果读入内存。每次调用独立打开并关闭连接
	Fetch(ctx context.Context, query string) (dataframe.DataFrame, error)
}

const (
	SchemeMysql    = "mysql"
	SchemePostgres = "postgres"
)

// Descriptor 连接描述
type Descriptor struct {
	Scheme   string
	User     string
	Password string
	Host     string
	Database string
}

func (d Descriptor) String() string {
	return fmt.Sprintf("%s://%s:%s@%s/%s", d.Scheme, d.User, d.Password, d.Host, d.Database)
}

// DSN 驱动使用的连接字符串
func (d Descriptor) DSN() string {
	switch d.Scheme {
	case SchemePostgres:
		return fmt.Sprintf("postgres://%s:%s@%s/%s", d.User, d.Password, d.Host, d.Database)
	default:
		return fmt.Sprintf("%s:%s@tcp(%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			d.User, d.Password, d.Host, d.Database)
	}
}

// 日志中使用，不输出密码
func (d Descriptor) Redacted() string {
	return fmt.Sprintf("%s://%s:***@%s/%s", d.Scheme, d.User, d.Host, d.Database)
}

func NewSource(d Descriptor) (Source, error) {
	switch d.Scheme {
	case SchemeMysql, "":
		return &mysqlSource{descriptor: d}, nil
	case SchemePostgres:
		return &postgresSource{descriptor: d}, nil
	default:
		return nil, errors.Wrapf(core.ErrDataSource, "不支持的scheme：%s", d.Scheme)
	}
}
