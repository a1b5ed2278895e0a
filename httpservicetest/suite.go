package httpservicetest

import (
	"strings"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/suite"
	"github.com/xmidt-org/httpservice"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

// Suite is an embeddable type that makes configuration-driven tests simpler.
// Embed this type in testify/suite-style test types.
type Suite struct {
	suite.Suite

	// viper is the viper instance for each test
	viper *viper.Viper
}

var _ suite.SetupTestSuite = (*Suite)(nil)

// SetupTest initializes a new viper instance for each test
func (suite *Suite) SetupTest() {
	suite.viper = viper.New()
}

// Viper returns the viper instance for the current test.
func (suite *Suite) Viper() *viper.Viper {
	return suite.viper
}

// YAML is a shorthand for bootstrapping the current test's viper environment
// with a given YAML configuration
func (suite *Suite) YAML(v string) {
	suite.viper.SetConfigType("yaml")

	suite.Require().NoError(
		suite.viper.ReadConfig(strings.NewReader(v)),
	)
}

// JSON is a shorthand for bootstrapping the current test's viper environment
// with a given JSON configuration
func (suite *Suite) JSON(v string) {
	suite.viper.SetConfigType("json")

	suite.Require().NoError(
		suite.viper.ReadConfig(strings.NewReader(v)),
	)
}

// Unmarshaler returns an httpservice.Unmarshaler for the current viper
// environment, for tests that do not need an fx.App.
func (suite *Suite) Unmarshaler(opts ...viper.DecoderConfigOption) httpservice.Unmarshaler {
	return httpservice.ViperUnmarshaler{
		Viper:   suite.viper,
		Options: append([]viper.DecoderConfigOption{httpservice.DefaultDecodeHooks}, opts...),
		Printer: httpservice.NewPrinterWriter(testWriter{t: suite.T()}),
	}
}

// Fxtest is a convenience for doing fxtest.New(...) with the current
// viper environment, test logging, and the additional fx.Options
func (suite *Suite) Fxtest(more ...fx.Option) *fxtest.App {
	return fxtest.New(
		suite.T(),
		append(
			[]fx.Option{
				httpservice.TestLogger(suite.T()),
				httpservice.ForViper(suite.viper),
			},
			more...,
		)...,
	)
}

// Fx is a convenience for doing fx.New(...) with the current
// viper environment, test logging, and the additional fx.Options
func (suite *Suite) Fx(more ...fx.Option) *fx.App {
	return fx.New(
		append(
			[]fx.Option{
				httpservice.TestLogger(suite.T()),
				httpservice.ForViper(suite.viper),
			},
			more...,
		)...,
	)
}
