package preprocess

import (
	"github.com/go-gota/gota/dataframe"
)

type Preprocessor interface {
	Preprocess(df dataframe.DataFrame) (dataframe.DataFrame, error)
}

// PreprocessorFunc 将普通函数转为Preprocessor
type PreprocessorFunc func(df dataframe.DataFrame) (dataframe.DataFrame, error)

func (f PreprocessorFunc) Preprocess(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	return f(df)
}

type chainPreprocess struct {
	chain []Preprocessor
}

func (c *chainPreprocess) Preprocess(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	var err error
	for _, processor := range c.chain {
		df, err = processor.Preprocess(df)
		if err != nil {
			return df, err
		}
	}
	return df, nil
}

// Chain 按顺序执行，遇到错误立即返回
func Chain(processors ...Preprocessor) Preprocessor {
	return &chainPreprocess{chain: processors}
}

// Default 返回数据集对应的清洗流程
func Default(dataset string) (Preprocessor, error) {
	recipe, err := RecipeFor(dataset)
	if err != nil {
		return nil, err
	}
	if recipe.Impute {
		return Chain(recipe, Impute()), nil
	}
	return recipe, nil
}
