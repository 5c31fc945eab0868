package core

import "fmt"

// 以下错误均通过errors.Wrap包装后返回，调用方使用errors.Is判断类别

var ErrIO = fmt.Errorf("读写缓存文件出错")

var ErrDataSource = fmt.Errorf("数据源出错")

var ErrTypeConversion = fmt.Errorf("类型转换出错")

var ErrMissingColumn = fmt.Errorf("缺少列")

// 二值列中出现了Yes与No以外的值
var ErrUnmappedValue = fmt.Errorf("无法映射的值")

var ErrNotFitted = fmt.Errorf("尚未拟合")

// 某一列全部为缺失值，无法估计缩放参数
var ErrNoObservedValues = fmt.Errorf("没有可用于拟合的值")

// 新生成的列与已有列重名
var ErrDuplicateColumn = fmt.Errorf("列名重复")

var ErrUnknownDataset = fmt.Errorf("不存在的数据集")

type categorized struct {
	category error
	cause    error
}

func (c *categorized) Error() string {
	return c.category.Error() + ": " + c.cause.Error()
}

func (c *categorized) Is(target error) bool {
	return target == c.category
}

func (c *categorized) Unwrap() error {
	return c.cause
}

// Categorize 为底层错误标记类别，errors.Is可以同时匹配类别与原始错误
func Categorize(category, cause error) error {
	if cause == nil {
		return nil
	}
	return &categorized{category: category, cause: cause}
}
