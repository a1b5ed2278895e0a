package httpservicetest

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/xmidt-org/httpservice"
	"go.uber.org/fx"
)

// SuiteTestSuite embeds Suite in the expected way and verifies
// that the suite lifecycle works properly
type SuiteTestSuite struct {
	Suite
}

func (suite *SuiteTestSuite) TestYAML() {
	suite.YAML(`
keys:
  - value1
  - value2
`)

	suite.Equal(
		[]string{"value1", "value2"},
		suite.Viper().GetStringSlice("keys"),
	)
}

func (suite *SuiteTestSuite) TestJSON() {
	suite.JSON(`{"keys": ["value1", "value2"]}`)
	suite.Equal(
		[]string{"value1", "value2"},
		suite.Viper().GetStringSlice("keys"),
	)
}

func (suite *SuiteTestSuite) TestUnmarshaler() {
	suite.YAML(`
param:
  name: id
  kind: path
`)

	var pc httpservice.ParameterConfig
	suite.Require().NoError(suite.Unmarshaler().UnmarshalKey("param", &pc))
	suite.Equal(httpservice.PathVariable("id"), pc.Parameter())
}

func (suite *SuiteTestSuite) TestFxtest() {
	suite.JSON(`{"value": "test"}`)

	var u httpservice.Unmarshaler
	app := suite.Fxtest(
		fx.Populate(&u),
	)

	app.RequireStart()
	defer app.RequireStop()

	var value struct {
		Value string
	}

	suite.Require().NotNil(u)
	suite.Require().NoError(u.Unmarshal(&value))
	suite.Equal("test", value.Value)
}

func (suite *SuiteTestSuite) TestFx() {
	var u httpservice.Unmarshaler
	app := suite.Fx(
		fx.Populate(&u),
	)

	suite.NoError(app.Err())
	suite.NotNil(u)
}

func TestSuite(t *testing.T) {
	suite.Run(t, new(SuiteTestSuite))
}

func TestNewErrApp(t *testing.T) {
	var u httpservice.Unmarshaler
	NewErrApp(t, fx.Populate(&u))
}

func TestNewApp(t *testing.T) {
	app := NewApp(t, fx.Supply("test"))
	app.RequireStart()
	app.RequireStop()
}
