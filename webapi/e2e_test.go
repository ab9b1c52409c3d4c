package webapi_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/amirasaad/ledger/pkg/dto"
	"github.com/amirasaad/ledger/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type LedgerE2ETestSuite struct {
	testutils.E2ETestSuite
	token string
}

func TestLedgerE2ETestSuite(t *testing.T) {
	suite.Run(t, new(LedgerE2ETestSuite))
}

func (s *LedgerE2ETestSuite) SetupTest() {
	s.E2ETestSuite.SetupTest()
	s.token = s.RegisterAndLogin()
}

func (s *LedgerE2ETestSuite) createPerson(name, balance string) string {
	resp := s.MakeRequest(http.MethodPost, "/api/Pessoa", fmt.Sprintf(`{"nome":%q,"saldoInicial":%s}`, name, balance), s.token)
	defer resp.Body.Close() //nolint: errcheck
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	var created struct {
		ID string `json:"id"`
	}
	testutils.DecodeData(s.T(), resp, &created)
	return created.ID
}

func (s *LedgerE2ETestSuite) getPerson(id string) *dto.PersonRead {
	resp := s.MakeRequest(http.MethodGet, "/api/Pessoa/"+id, "", "")
	defer resp.Body.Close() //nolint: errcheck
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var p dto.PersonRead
	testutils.DecodeData(s.T(), resp, &p)
	return &p
}

func (s *LedgerE2ETestSuite) move(op, accountID, amount string) (int, decimal.Decimal) {
	resp := s.MakeRequest(http.MethodPost, "/Conta/"+accountID+"/"+op, fmt.Sprintf(`{"valor":%s}`, amount), s.token)
	defer resp.Body.Close() //nolint: errcheck
	if resp.StatusCode != fiber.StatusOK {
		return resp.StatusCode, decimal.Zero
	}
	var body struct {
		Balance decimal.Decimal `json:"saldo"`
	}
	testutils.DecodeData(s.T(), resp, &body)
	return resp.StatusCode, body.Balance
}

func (s *LedgerE2ETestSuite) TestAnaScenario() {
	personID := s.createPerson("Ana", "100")
	p := s.getPerson(personID)
	s.Equal("Ana", p.Name)
	s.Require().NotNil(p.Account)
	s.True(decimal.NewFromInt(100).Equal(p.Account.Balance))
	accountID := p.Account.ID.String()

	status, balance := s.move("credito", accountID, `"50"`)
	s.Equal(fiber.StatusOK, status)
	s.True(decimal.NewFromInt(150).Equal(balance))

	status, _ = s.move("debito", accountID, "200")
	s.Equal(fiber.StatusBadRequest, status)
	s.True(decimal.NewFromInt(150).Equal(s.getPerson(personID).Account.Balance))

	status, balance = s.move("debito", accountID, "150")
	s.Equal(fiber.StatusOK, status)
	s.True(balance.IsZero())

	status, _ = s.move("debito", accountID, "1")
	s.Equal(fiber.StatusBadRequest, status)

	resp := s.MakeRequest(http.MethodGet, "/Conta/"+personID+"/saldo", "", s.token)
	defer resp.Body.Close() //nolint: errcheck
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var b dto.BalanceRead
	testutils.DecodeData(s.T(), resp, &b)
	s.Equal("Ana", b.Name)
	s.Equal(accountID, b.AccountID.String())
	s.True(b.Balance.IsZero())
}

func (s *LedgerE2ETestSuite) TestRenamePerson() {
	personID := s.createPerson("Ana", "0")

	resp := s.MakeRequest(http.MethodPatch, "/api/Pessoa/"+personID, `{"nome":"Ana Maria"}`, s.token)
	resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusNoContent, resp.StatusCode)
	s.Equal("Ana Maria", s.getPerson(personID).Name)

	resp = s.MakeRequest(http.MethodPatch, "/api/Pessoa/"+personID, `{}`, s.token)
	resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusNoContent, resp.StatusCode)
	s.Equal("Ana Maria", s.getPerson(personID).Name)
}

func (s *LedgerE2ETestSuite) TestDeletePersonCascadesToAccount() {
	personID := s.createPerson("Ana", "10")
	accountID := s.getPerson(personID).Account.ID.String()

	resp := s.MakeRequest(http.MethodDelete, "/api/Pessoa/"+personID, "", s.token)
	resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusNoContent, resp.StatusCode)

	resp = s.MakeRequest(http.MethodGet, "/api/Pessoa/"+personID, "", "")
	resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusNotFound, resp.StatusCode)

	status, _ := s.move("credito", accountID, "1")
	s.Equal(fiber.StatusNotFound, status)

	var count int64
	s.Require().NoError(s.DB.Table("accounts").Count(&count).Error)
	s.Zero(count)
}

func (s *LedgerE2ETestSuite) TestDeleteAccountKeepsPerson() {
	personID := s.createPerson("Ana", "10")
	accountID := s.getPerson(personID).Account.ID.String()

	resp := s.MakeRequest(http.MethodDelete, "/Conta/"+accountID, "", s.token)
	resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusNoContent, resp.StatusCode)

	s.Nil(s.getPerson(personID).Account)

	resp = s.MakeRequest(http.MethodGet, "/Conta/"+personID+"/saldo", "", s.token)
	resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusNotFound, resp.StatusCode)

	resp = s.MakeRequest(http.MethodDelete, "/Conta/"+accountID, "", s.token)
	resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusNotFound, resp.StatusCode)
}

func (s *LedgerE2ETestSuite) TestRegisterTwice() {
	body := `{"name":"visualAPI","password":"senha123"}`
	resp := s.MakeRequest(http.MethodPost, "/api/auth/CreateUser", body, "")
	resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusOK, resp.StatusCode)

	resp = s.MakeRequest(http.MethodPost, "/api/auth/CreateUser", body, "")
	resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusConflict, resp.StatusCode)

	// Usernames are case-sensitive.
	resp = s.MakeRequest(http.MethodPost, "/api/auth/CreateUser", `{"name":"VisualAPI","password":"senha123"}`, "")
	resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusOK, resp.StatusCode)

	resp = s.MakeRequest(http.MethodPost, "/api/auth/login", `{"name":"visualAPI","password":"wrong"}`, "")
	resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusUnauthorized, resp.StatusCode)
}

func (s *LedgerE2ETestSuite) TestConcurrentDebitsNeverOverdraw() {
	personID := s.createPerson("Ana", "100")
	accountID := s.getPerson(personID).Account.ID.String()

	const workers = 10
	var (
		wg sync.WaitGroup
		mu sync.Mutex
		ok int
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp := testutils.MakeRequest(s.T(), s.App, http.MethodPost, "/Conta/"+accountID+"/debito", `{"valor":15}`, s.token)
			resp.Body.Close() //nolint: errcheck
			if resp.StatusCode == fiber.StatusOK {
				mu.Lock()
				ok++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	s.Equal(6, ok)
	p := s.getPerson(personID)
	s.True(decimal.NewFromInt(10).Equal(p.Account.Balance), p.Account.Balance.String())
}

func (s *LedgerE2ETestSuite) TestHealth() {
	resp := s.MakeRequest(http.MethodGet, "/api/health/db", "", "")
	resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusOK, resp.StatusCode)
}
