package preprocess

import (
	"github.com/go-gota/gota/series"
	"github.com/packagewjx/eda-prep/internal/utils"
	"github.com/packagewjx/eda-prep/pkg/core"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestPrepareChurnScenario(t *testing.T) {
	df, err := utils.RecordsToTable([][]string{
		{"customer_id", "churn", "total_charges", "gender"},
		{"0001", "Yes", "29.85", "Male"},
		{"0002", "No", " ", "Female"},
		{"0003", "Yes", "56.95", "Male"},
	})
	assert.NoError(t, err)

	recipe := &Recipe{
		Name:       "churn",
		BinaryMaps: []BinaryMap{{Source: "churn", Target: "has_churned"}},
		Dummies:    []string{"gender"},
		Drop:       []string{"gender", "churn"},
		Sentinels:  []Sentinel{{Column: "total_charges", Value: " ", Replacement: "0"}},
		Numeric:    []string{"total_charges"},
	}
	result, err := recipe.Preprocess(df)
	assert.NoError(t, err)

	assert.Equal(t, []string{"customer_id", "total_charges", "has_churned", "gender_Male"}, result.Names())
	churned, _ := result.Col("has_churned").Int()
	assert.Equal(t, []int{1, 0, 1}, churned)
	assert.Equal(t, series.Float, result.Col("total_charges").Type())
	assert.Equal(t, []float64{29.85, 0, 56.95}, result.Col("total_charges").Float())
	male, _ := result.Col("gender_Male").Int()
	assert.Equal(t, []int{1, 0, 1}, male)

	// 原表保持不变
	assert.Equal(t, []string{"customer_id", "churn", "total_charges", "gender"}, df.Names())
	assert.Equal(t, " ", df.Col("total_charges").Elem(1).String())

	// 完整的telco流程需要更多的列
	_, err = TelcoRecipe().Preprocess(df)
	assert.True(t, errors.Is(err, core.ErrMissingColumn))
}

func TestTelcoRecipe(t *testing.T) {
	header := []string{"customer_id", "gender", "senior_citizen", "partner", "dependents", "tenure",
		"phone_service", "multiple_lines", "online_security", "online_backup", "device_protection",
		"tech_support", "streaming_tv", "streaming_movies", "paperless_billing", "monthly_charges",
		"total_charges", "churn", "contract_type", "internet_service_type", "payment_type"}
	df, err := utils.RecordsToTable([][]string{
		header,
		{"0002-ORFBO", "Female", "0", "Yes", "Yes", "9", "Yes", "No", "No", "Yes", "No", "Yes", "Yes",
			"No", "Yes", "65.6", "593.3", "No", "One year", "DSL", "Mailed check"},
		{"0003-MKNFE", "Male", "0", "No", "No", "9", "Yes", "Yes", "No", "No", "No", "No", "No",
			"Yes", "No", "59.9", "542.4", "No", "Month-to-month", "DSL", "Mailed check"},
		{"0004-TLHLJ", "Male", "1", "No", "No", "0", "No", "No phone service", "No", "No", "Yes", "No", "No",
			"No", "Yes", "73.9", " ", "Yes", "Month-to-month", "Fiber optic", "Electronic check"},
	})
	assert.NoError(t, err)

	result, err := TelcoRecipe().Preprocess(df)
	assert.NoError(t, err)

	for _, dropped := range TelcoRecipe().Drop {
		assert.False(t, utils.HasColumn(result, dropped), dropped)
	}
	for _, kept := range []string{"customer_id", "senior_citizen", "tenure", "monthly_charges", "total_charges",
		"has_churned", "paperless_billing_numeric", "gender_Male", "partner_Yes",
		"multiple_lines_No phone service", "multiple_lines_Yes"} {
		assert.True(t, utils.HasColumn(result, kept), kept)
	}

	churned, _ := result.Col("has_churned").Int()
	assert.Equal(t, []int{0, 0, 1}, churned)
	paperless, _ := result.Col("paperless_billing_numeric").Int()
	assert.Equal(t, []int{1, 0, 1}, paperless)
	assert.Equal(t, []float64{593.3, 542.4, 0}, result.Col("total_charges").Float())
	assert.Equal(t, series.Float, result.Col("monthly_charges").Type())
}

func TestDefault(t *testing.T) {
	for _, name := range core.DatasetNames() {
		p, err := Default(name)
		assert.NoError(t, err)
		assert.NotNil(t, p)
	}
	_, err := Default("iris")
	assert.True(t, errors.Is(err, core.ErrUnknownDataset))
}

func TestZillowDefaultImputes(t *testing.T) {
	df, err := utils.RecordsToTable([][]string{
		{"bedroomcnt", "bathroomcnt", "calculatedfinishedsquarefeet", "taxvaluedollarcnt", "yearbuilt", "taxamount", "fips"},
		{"3", "2", "1200", "300000", "1990", "3500.5", "6037"},
		{"4", "", "", "400000", "2005", "4700.25", "6059"},
		{"", "3", "1800", "", "", "", "6111"},
	})
	assert.NoError(t, err)

	p, err := Default(core.DatasetZillow)
	assert.NoError(t, err)
	result, err := p.Preprocess(df)
	assert.NoError(t, err)

	assert.Equal(t, []float64{3, 4, 3.5}, result.Col("bedroomcnt").Float())
	assert.Equal(t, []float64{1200, 1500, 1800}, result.Col("calculatedfinishedsquarefeet").Float())
	for _, name := range result.Names() {
		for i := 0; i < result.Nrow(); i++ {
			assert.False(t, result.Col(name).Elem(i).IsNA(), name)
		}
	}
}
