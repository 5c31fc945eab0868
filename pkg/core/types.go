package core

import (
	"github.com/pkg/errors"
	"sort"
)

// Dataset 描述一个可以从数据库获取并缓存到本地的数据集
type Dataset struct {
	Name     string
	FileName string // 缓存文件名
	Database string
	Query    string
	// 默认需要缩放的列
	ScaleColumns []string
}

const (
	DatasetTelco         = "telco"
	DatasetMallCustomers = "mall"
	DatasetZillow        = "zillow"
)

const Splitter = ","

const MissingValue = "NaN"

var Telco = &Dataset{
	Name:     DatasetTelco,
	FileName: "telco_churn.csv",
	Database: "telco_churn",
	Query: `SELECT *
        FROM customers
        JOIN contract_types
        ON contract_types.contract_type_id = customers.contract_type_id
        JOIN internet_service_types
        ON internet_service_types.internet_service_type_id = customers.internet_service_type_id
        JOIN payment_types
        ON payment_types.payment_type_id = customers.payment_type_id`,
	ScaleColumns: []string{"tenure", "monthly_charges", "total_charges"},
}

var MallCustomers = &Dataset{
	Name:         DatasetMallCustomers,
	FileName:     "mall_customers.csv",
	Database:     "mall_customers",
	Query:        `SELECT * FROM customers`,
	ScaleColumns: []string{"age", "annual_income", "spending_score"},
}

var Zillow = &Dataset{
	Name:     DatasetZillow,
	FileName: "zillow.csv",
	Database: "zillow",
	Query: `SELECT bedroomcnt, bathroomcnt, calculatedfinishedsquarefeet,
         taxvaluedollarcnt, yearbuilt, taxamount, fips FROM properties_2017
    JOIN propertylandusetype
    ON propertylandusetype.propertylandusetypeid = properties_2017.propertylandusetypeid
    AND propertylandusetype.propertylandusetypeid = 261`,
	ScaleColumns: []string{"bedroomcnt", "bathroomcnt", "calculatedfinishedsquarefeet", "taxamount"},
}

var datasets = map[string]*Dataset{
	DatasetTelco:         Telco,
	DatasetMallCustomers: MallCustomers,
	DatasetZillow:        Zillow,
}

func GetDataset(name string) (*Dataset, error) {
	d, ok := datasets[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownDataset, "数据集%s，可选值：%v", name, DatasetNames())
	}
	return d, nil
}

func DatasetNames() []string {
	names := make([]string, 0, len(datasets))
	for name := range datasets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
