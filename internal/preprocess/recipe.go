package preprocess

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/packagewjx/eda-prep/internal/utils"
	"github.com/packagewjx/eda-prep/pkg/core"
	"github.com/pkg/errors"
	"log"
	"os"
)

var logger = log.New(os.Stdout, "preprocess: ", log.LstdFlags|log.Lshortfile|log.Lmsgprefix)

// Recipe 描述一个数据集的清洗步骤，执行顺序为：
// 二值映射、独热编码、删除列、替换哨兵值、转换为数值
type Recipe struct {
	Name       string
	BinaryMaps []BinaryMap
	Dummies    []string
	Drop       []string
	Sentinels  []Sentinel
	Numeric    []string
	// 清洗后是否需要使用均值填充缺失值
	Impute bool
}

func (r *Recipe) Preprocess(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	return Prepare(df, r)
}

func (r *Recipe) inputColumns() []string {
	result := make([]string, 0, len(r.BinaryMaps)+len(r.Dummies)+len(r.Drop)+len(r.Sentinels)+len(r.Numeric))
	for _, m := range r.BinaryMaps {
		result = append(result, m.Source)
	}
	result = append(result, r.Dummies...)
	result = append(result, r.Drop...)
	for _, s := range r.Sentinels {
		result = append(result, s.Column)
	}
	return append(result, r.Numeric...)
}

// Prepare 返回新的数据表，不修改df
func Prepare(df dataframe.DataFrame, r *Recipe) (dataframe.DataFrame, error) {
	if err := utils.RequireColumns(df, r.inputColumns()...); err != nil {
		return df, errors.Wrapf(err, "数据集%s", r.Name)
	}

	var err error
	result := df
	for _, m := range r.BinaryMaps {
		if result, err = MapBinary(result, m); err != nil {
			return df, err
		}
	}
	if result, err = OneHot(result, r.Dummies); err != nil {
		return df, err
	}
	if result, err = DropColumns(result, r.Drop); err != nil {
		return df, err
	}
	for _, s := range r.Sentinels {
		if result, err = ReplaceSentinel(result, s); err != nil {
			return df, err
		}
	}
	if result, err = ToNumeric(result, r.Numeric); err != nil {
		return df, err
	}

	logger.Printf("数据集%s清洗完成，%d行%d列\n", r.Name, result.Nrow(), result.Ncol())
	return result, nil
}

func TelcoRecipe() *Recipe {
	dummies := []string{"partner", "dependents", "gender", "phone_service", "multiple_lines",
		"online_security", "online_backup", "device_protection", "tech_support",
		"streaming_tv", "streaming_movies"}
	drop := append([]string{}, dummies...)
	drop = append(drop, "contract_type", "internet_service_type", "payment_type", "churn", "paperless_billing")

	return &Recipe{
		Name: core.DatasetTelco,
		BinaryMaps: []BinaryMap{
			{Source: "churn", Target: "has_churned"},
			{Source: "paperless_billing", Target: "paperless_billing_numeric"},
		},
		Dummies:   dummies,
		Drop:      drop,
		Sentinels: []Sentinel{{Column: "total_charges", Value: " ", Replacement: "0"}},
		Numeric:   []string{"total_charges", "monthly_charges"},
	}
}

func MallRecipe() *Recipe {
	return &Recipe{
		Name:    core.DatasetMallCustomers,
		Dummies: []string{"gender"},
		Drop:    []string{"gender"},
		Numeric: []string{"age", "annual_income", "spending_score"},
	}
}

func ZillowRecipe() *Recipe {
	return &Recipe{
		Name: core.DatasetZillow,
		Numeric: []string{"bedroomcnt", "bathroomcnt", "calculatedfinishedsquarefeet",
			"taxvaluedollarcnt", "yearbuilt", "taxamount", "fips"},
		Impute: true,
	}
}

func RecipeFor(dataset string) (*Recipe, error) {
	switch dataset {
	case core.DatasetTelco:
		return TelcoRecipe(), nil
	case core.DatasetMallCustomers:
		return MallRecipe(), nil
	case core.DatasetZillow:
		return ZillowRecipe(), nil
	default:
		return nil, errors.Wrapf(core.ErrUnknownDataset, "数据集%s没有清洗流程", dataset)
	}
}
