package feed

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
)

type staticBanks map[string]string

func (b staticBanks) Name(code string) (string, bool) {
	name, ok := b[code]
	return name, ok
}

type LoaderSuite struct {
	suite.Suite
	dir    string
	loader *Loader
	ctx    context.Context
}

func TestLoaderSuite(t *testing.T) {
	suite.Run(t, new(LoaderSuite))
}

func (s *LoaderSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.loader = NewLoader(staticBanks{"sber": "Сбербанк"}, WithConcurrency(2))
	s.ctx = context.Background()
}

func (s *LoaderSuite) write(name, body string) {
	s.Require().NoError(os.WriteFile(filepath.Join(s.dir, name), []byte(body), 0o600))
}

func (s *LoaderSuite) TestLoad_MergesInBankCodeOrder() {
	s.write("tbank.json", `{"accounts":[{"id":"t1","balance":200}],"transactions":[{"date":"2024-01-02","amount":-5}]}`)
	s.write("sber.json", `[{"id":"s1","balance":"1000"},{"id":"s2","bank":"sber-biz","balance":5}]`)

	data, err := s.loader.Load(s.ctx, s.dir)

	s.Require().NoError(err)
	s.Require().Len(data.Accounts, 3)
	s.Equal("s1", data.Accounts[0]["id"])
	s.Equal("sber", data.Accounts[0]["bank"])
	s.Equal("Сбербанк", data.Accounts[0]["bankName"])
	s.Equal("sber-biz", data.Accounts[1]["bank"])
	s.Equal("t1", data.Accounts[2]["id"])
	s.Equal("tbank", data.Accounts[2]["bank"])
	_, hasName := data.Accounts[2]["bankName"]
	s.False(hasName)

	s.Require().Len(data.Transactions, 1)
	s.Equal("tbank", data.Transactions[0]["bank"])

	s.Require().Len(data.Consents, 2)
	s.Equal("sber", data.Consents[0]["bank"])
	s.Equal(ConsentActive, data.Consents[0]["status"])
}

func (s *LoaderSuite) TestLoad_KeepsNumbersExact() {
	s.write("vtb.json", `{"items":[{"balance":12345678901234567.89}]}`)

	data, err := s.loader.Load(s.ctx, s.dir)

	s.Require().NoError(err)
	s.Equal(json.Number("12345678901234567.89"), data.Accounts[0]["balance"])
}

func (s *LoaderSuite) TestLoad_ConsentStatusFromFile() {
	s.write("alfa.json", `{"accounts":[],"consentStatus":"pending"}`)

	data, err := s.loader.Load(s.ctx, s.dir)

	s.Require().NoError(err)
	s.Equal("pending", data.Consents[0]["status"])
	s.Empty(data.Accounts)
}

func (s *LoaderSuite) TestLoad_BrokenFileFailsWholeFeed() {
	s.write("sber.json", `[{"id":"s1"}]`)
	s.write("tbank.json", `{"accounts": [`)

	data, err := s.loader.Load(s.ctx, s.dir)

	s.Nil(data)
	s.ErrorIs(err, ErrIncompleteFeed)
	s.Contains(err.Error(), "tbank")
}

func (s *LoaderSuite) TestLoadLenient_ReportsBrokenBank() {
	s.write("sber.json", `[{"id":"s1"}]`)
	s.write("tbank.json", `{"accounts": 42}`)

	data, err := s.loader.LoadLenient(s.ctx, s.dir)

	s.Require().NoError(err)
	s.Len(data.Accounts, 1)
	s.Require().Len(data.Consents, 2)
	s.Equal("tbank", data.Consents[1]["bank"])
	s.NotEmpty(data.Consents[1]["error"])
}

func (s *LoaderSuite) TestLoad_EmptyDirectory() {
	_, err := s.loader.Load(s.ctx, s.dir)

	s.ErrorIs(err, ErrNoBankFiles)
}

func (s *LoaderSuite) TestLoad_CancelledContext() {
	s.write("sber.json", `[]`)
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.loader.Load(ctx, s.dir)

	s.ErrorIs(err, context.Canceled)
}

func (s *LoaderSuite) TestParseBankFeed_Shapes() {
	parsed, err := parseBankFeed([]byte(`{"accounts":null,"transactions":[{"amount":1}]}`))
	s.NoError(err)
	s.Empty(parsed.accounts)
	s.Len(parsed.transactions, 1)

	_, err = parseBankFeed([]byte("   "))
	s.Error(err)

	_, err = parseBankFeed([]byte(`[1, 2]`))
	s.Error(err)
}

func (s *LoaderSuite) TestParseBankFeed_NonStringConsentStatus() {
	parsed, err := parseBankFeed([]byte(`{"accounts":[],"consentStatus":{"state":"ok"}}`))

	s.Require().NoError(err)
	s.Equal(ConsentUnknown, parsed.consentStatus)
	s.Error(parsed.consentErr)
}

func (s *LoaderSuite) TestLoad_NonStringConsentStatusLogged() {
	var logs bytes.Buffer
	loader := NewLoader(nil, WithLogger(slog.New(slog.NewJSONHandler(&logs, nil))))
	s.write("alfa.json", `{"accounts":[{"id":"a1"}],"consentStatus":42}`)

	data, err := loader.Load(s.ctx, s.dir)

	s.Require().NoError(err)
	s.Len(data.Accounts, 1)
	s.Equal(ConsentUnknown, data.Consents[0]["status"])
	s.Contains(logs.String(), "bank feed consent status ignored")
	s.Contains(logs.String(), `"bank":"alfa"`)
}
