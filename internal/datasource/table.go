package datasource

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/packagewjx/eda-prep/internal/utils"
	"github.com/packagewjx/eda-prep/pkg/core"
	"github.com/pkg/errors"
)

// BuildTable 将查询结果转换为数据表。nil代表SQL NULL。
// 多表JOIN后会出现同名的连接键列，这里只保留第一次出现的列，否则gota会自动重命名，后续按列名处理时结果不可预期
func BuildTable(columns []string, rows [][]*string) (dataframe.DataFrame, error) {
	if len(columns) == 0 {
		return dataframe.DataFrame{}, errors.Wrap(core.ErrDataSource, "查询结果没有任何列")
	}

	keep := DistinctColumns(columns)
	header := make([]string, len(keep))
	for i, idx := range keep {
		header[i] = columns[idx]
	}

	if len(rows) == 0 {
		return utils.EmptyTable(header), nil
	}

	records := make([][]string, 1, len(rows)+1)
	records[0] = header
	for ri, row := range rows {
		if len(row) != len(columns) {
			return dataframe.DataFrame{}, errors.Wrapf(core.ErrDataSource,
				"第%d行有%d个值，应为%d个", ri, len(row), len(columns))
		}
		record := make([]string, len(keep))
		for i, idx := range keep {
			if row[idx] == nil {
				record[i] = core.MissingValue
			} else {
				record[i] = *row[idx]
			}
		}
		records = append(records, record)
	}

	return utils.RecordsToTable(records)
}

// DistinctColumns 返回每个列名第一次出现的位置
func DistinctColumns(columns []string) []int {
	seen := make(map[string]struct{}, len(columns))
	keep := make([]int, 0, len(columns))
	for i, name := range columns {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		keep = append(keep, i)
	}
	return keep
}
