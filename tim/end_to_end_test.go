package tim

import (
	"bytes"
	"os"
	"testing"

	"contraption/tim/tpart"
	"contraption/tim/tstruct"
	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type EndToEndTestSuite struct {
	Names          []string
	FileByteSlices [][]byte
	Options        tstruct.Options
	R              *require.Assertions
	suite.Suite
}

func createSampleLevel(r *require.Assertions) []byte {
	level := tstruct.NewLevel("SAMPLE", "put the ball in the bucket")
	ball, err := tpart.NewBase(9, 100, 20)
	r.NoError(err)
	bucket, err := tpart.NewBase(18, 400, 300)
	r.NoError(err)
	bucket.Common.Flags1 = 0x6000
	pulley, err := tpart.NewPulley(200, 100, 3)
	r.NoError(err)
	programmable, err := tpart.NewProgrammableBall(30, 30, tpart.ProgrammableBall{Density: 2, Mass: 9})
	r.NoError(err)
	level.MovingParts = []tpart.Record{ball, programmable}
	level.FixedParts = []tpart.Record{bucket, pulley, tpart.NewRope(0, 2), tpart.NewBelt(1, 2)}
	level.Solution.Count = 1
	level.Solution.Conditions[0].PartIndex = 0
	level.Solution.Conditions[0].RectX = 380
	bs, err := tstruct.Encode(level)
	r.NoError(err)
	return bs
}

func (suite *EndToEndTestSuite) SetupSuite() {
	suite.R = suite.Require()
	suite.Options = tstruct.Options{Logger: log.New(&bytes.Buffer{})}
	generated, err := os.ReadFile("testdata/GENERATED0001.TIM")
	suite.R.NoError(err)
	suite.Names = []string{"testdata/GENERATED0001.TIM", "sample"}
	suite.FileByteSlices = [][]byte{generated, createSampleLevel(suite.R)}
}

func (suite *EndToEndTestSuite) TestIsTIM() {
	lo.ForEach(
		suite.FileByteSlices,
		func(bs []byte, _ int) {
			suite.R.True(IsTIM(bs))
		},
	)
	suite.R.False(IsTIM([]byte(`{"version": 1}`)))
}

func (suite *EndToEndTestSuite) TestDecodeEncode() {
	lo.ForEach(
		lo.Zip2(suite.Names, suite.FileByteSlices),
		func(tuple lo.Tuple2[string, []byte], _ int) {
			name := tuple.A
			fileBytes := tuple.B
			jsonBytes, err := DecodeTIM(fileBytes, suite.Options, "  ", false)
			suite.R.NoErrorf(err, name)
			encodedBytes, err := EncodeJSON(jsonBytes)
			suite.R.NoErrorf(err, name)
			suite.R.Equalf(len(fileBytes), len(encodedBytes), name)
			suite.R.Equalf(fileBytes, encodedBytes, name)
		},
	)
}

func (suite *EndToEndTestSuite) TestDecodeEncode_Struct() {
	lo.ForEach(
		lo.Zip2(suite.Names, suite.FileByteSlices),
		func(tuple lo.Tuple2[string, []byte], _ int) {
			name := tuple.A
			fileBytes := tuple.B
			level, err := tstruct.Decode(fileBytes, suite.Options)
			suite.R.NoErrorf(err, name)
			encodedBytes, err := tstruct.Encode(*level)
			suite.R.NoErrorf(err, name)
			suite.R.Equalf(fileBytes, encodedBytes, name)
		},
	)
}

func (suite *EndToEndTestSuite) TestDecode_Debug() {
	jsonBytes, err := DecodeTIM(suite.FileByteSlices[0], suite.Options, "  ", true)
	suite.R.NoError(err)
	suite.R.Contains(string(jsonBytes), `"moving_parts"`)
	suite.R.Contains(string(jsonBytes), `"BOWLING_BALL"`)
}

func (suite *EndToEndTestSuite) TestEncode_InvalidJSON() {
	_, err := EncodeJSON([]byte(`{"version": 1`))
	suite.R.Error(err)
	_, err = EncodeJSON([]byte(`{"version": 1}`))
	suite.R.Error(err)
}

func (suite *EndToEndTestSuite) TestDecode_SettingsWarning() {
	level := tstruct.NewLevel("X", "")
	level.Settings.Music = 5
	bs, err := tstruct.Encode(level)
	suite.R.NoError(err)

	logs := &bytes.Buffer{}
	_, err = DecodeTIM(bs, tstruct.Options{Logger: log.New(logs)}, "", false)
	suite.R.NoError(err)
	suite.R.Contains(logs.String(), "out of editor range")
}

func (suite *EndToEndTestSuite) TestDecodeEncode_Latin1Title() {
	bs, err := tstruct.Encode(tstruct.NewLevel("Caf\xe9", ""))
	suite.R.NoError(err)
	jsonBytes, err := DecodeTIM(bs, suite.Options, "  ", false)
	suite.R.NoError(err)
	suite.R.Contains(string(jsonBytes), `"title": "Café"`)
	encodedBytes, err := EncodeJSON(jsonBytes)
	suite.R.NoError(err)
	suite.R.Equal(bs, encodedBytes)
}

func TestEndToEnd(t *testing.T) {
	suite.Run(t, new(EndToEndTestSuite))
}
