package providers

import (
	"errors"
	"net"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/suite"
)

type MaxMindDBBaseTestSuite struct {
	suite.Suite

	m  *maxmindBase
	fs afero.Fs
}

func (suite *MaxMindDBBaseTestSuite) SetupSuite() {
	suite.fs = makeTestDatabase()
}

func (suite *MaxMindDBBaseTestSuite) SetupTest() {
	suite.m = &maxmindBase{}
}

func (suite *MaxMindDBBaseTestSuite) TearDownTest() {
	suite.m.Shutdown()
}

func (suite *MaxMindDBBaseTestSuite) TestName() {
	suite.Equal(NameMaxmind, suite.m.Name())
}

func (suite *MaxMindDBBaseTestSuite) TestOpenErrorNoFile() {
	suite.Error(suite.m.Open(suite.fs, "/nothing.mmdb"))
}

func (suite *MaxMindDBBaseTestSuite) TestOpenErrorBadFile() {
	suite.Error(suite.m.Open(suite.fs, "/broken.mmdb"))
}

func (suite *MaxMindDBBaseTestSuite) TestOpenTwice() {
	suite.NoError(suite.m.Open(suite.fs, testDatabasePath))
	suite.NoError(suite.m.Open(suite.fs, testDatabasePath))

	_, err := suite.m.Lookup(net.ParseIP("81.2.69.142"))

	suite.NoError(err)
}

func (suite *MaxMindDBBaseTestSuite) TestLookupNotReady() {
	_, err := suite.m.Lookup(net.ParseIP("81.2.69.142"))

	suite.True(errors.Is(err, ErrDatabaseIsNotReadyYet))
}

func (suite *MaxMindDBBaseTestSuite) TestLookupAfterShutdown() {
	suite.NoError(suite.m.Open(suite.fs, testDatabasePath))
	suite.m.Shutdown()

	_, err := suite.m.Lookup(net.ParseIP("81.2.69.142"))

	suite.True(errors.Is(err, ErrDatabaseIsNotReadyYet))
}

func (suite *MaxMindDBBaseTestSuite) TestLookupOk() {
	suite.NoError(suite.m.Open(suite.fs, testDatabasePath))

	result, err := suite.m.Lookup(net.ParseIP("81.2.69.143"))

	suite.NoError(err)
	suite.True(result.OK())
	suite.Equal("London", *result.City)
	suite.Equal("United Kingdom", *result.Country)
	suite.InDelta(51.5142, *result.Latitude, 1e-9)
	suite.InDelta(-0.0931, *result.Longitude, 1e-9)
}

func (suite *MaxMindDBBaseTestSuite) TestLookupIPv6() {
	suite.NoError(suite.m.Open(suite.fs, testDatabasePath))

	result, err := suite.m.Lookup(net.ParseIP("2001:4860:4860::8888"))

	suite.NoError(err)
	suite.True(result.OK())
	suite.Equal("Mountain View", *result.City)
}

func (suite *MaxMindDBBaseTestSuite) TestLookupZeroLocation() {
	suite.NoError(suite.m.Open(suite.fs, testDatabasePath))

	result, err := suite.m.Lookup(net.ParseIP("9.9.9.9"))

	suite.NoError(err)
	suite.True(result.OK())
	suite.Equal(0.0, *result.Latitude)
	suite.Equal(0.0, *result.Longitude)
}

func (suite *MaxMindDBBaseTestSuite) TestLookupNoLocation() {
	suite.NoError(suite.m.Open(suite.fs, testDatabasePath))

	result, err := suite.m.Lookup(net.ParseIP("1.1.1.1"))

	suite.NoError(err)
	suite.False(result.OK())
	suite.Equal("Sydney", *result.City)
	suite.Equal("Australia", *result.Country)
	suite.Nil(result.Latitude)
	suite.Nil(result.Longitude)
}

func (suite *MaxMindDBBaseTestSuite) TestLookupNoCity() {
	suite.NoError(suite.m.Open(suite.fs, testDatabasePath))

	result, err := suite.m.Lookup(net.ParseIP("8.8.8.8"))

	suite.NoError(err)
	suite.False(result.OK())
	suite.Nil(result.City)
	suite.Equal("United States", *result.Country)
}

func (suite *MaxMindDBBaseTestSuite) TestLookupEmptyAndMissingNames() {
	suite.NoError(suite.m.Open(suite.fs, testDatabasePath))

	result, err := suite.m.Lookup(net.ParseIP("4.4.4.4"))

	suite.NoError(err)
	suite.NotNil(result.City)
	suite.Equal("", *result.City)
	suite.Nil(result.Country)
	suite.False(result.OK())
}

func (suite *MaxMindDBBaseTestSuite) TestLookupNotFound() {
	suite.NoError(suite.m.Open(suite.fs, testDatabasePath))

	_, err := suite.m.Lookup(net.ParseIP("5.5.5.5"))

	suite.True(errors.Is(err, ErrAddressNotFound))
}

func TestMaxMindDBBase(t *testing.T) {
	suite.Run(t, &MaxMindDBBaseTestSuite{})
}
