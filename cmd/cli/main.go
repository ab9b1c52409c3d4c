package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/amirasaad/ledger/pkg/config"
	"github.com/fatih/color"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/term"
)

const usage = `Usage: cli <command> [arguments]
Commands:
  register <username>                 create a user (password is prompted)
  login <username>                    print a token (password is prompted)
  people                              list people
  accounts                            list accounts
  create <name> <balance>             create a person and its account
  balance <personId>                  show the balance of a person's account
  credit <accountId> <amount>         add funds
  debit <accountId> <amount>          withdraw funds
  delete-person <personId>            delete a person and its account
  delete-account <accountId>          delete an account, keeping its person
Environment:
  LEDGER_API_URL  API base URL (default http://localhost:3000)
  LEDGER_TOKEN    bearer token for protected commands`

var (
	ok   = color.New(color.FgGreen).SprintFunc()
	fail = color.New(color.FgRed).SprintFunc()
	info = color.New(color.FgCyan).SprintFunc()
)

type envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Title   string          `json:"title"`
	Detail  string          `json:"detail"`
}

type client struct {
	baseURL string
	token   string
}

func (c *client) do(method, path string, body any) (*envelope, error) {
	// Bytes releases the agent.
	agent := fiber.AcquireAgent()
	req := agent.Request()
	req.Header.SetMethod(method)
	req.SetRequestURI(c.baseURL + path)
	if c.token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+c.token)
	}
	if body != nil {
		agent.JSON(body)
	}
	if err := agent.Parse(); err != nil {
		return nil, err
	}

	status, raw, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	var env envelope
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			return nil, fmt.Errorf("unexpected response (%d): %s", status, raw)
		}
	}
	if status >= fiber.StatusBadRequest {
		if env.Detail != "" {
			return nil, fmt.Errorf("%s (%d): %s", env.Title, status, env.Detail)
		}
		return nil, fmt.Errorf("%s (%d)", env.Title, status)
	}
	return &env, nil
}

func readPassword() (string, error) {
	fmt.Print("Password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(password), nil
}

func parseUUID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", s)
	}
	return amount, nil
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println(usage)
		return
	}
	c := &client{
		baseURL: strings.TrimRight(config.GetEnv("LEDGER_API_URL", "http://localhost:3000"), "/"),
		token:   config.GetEnv("LEDGER_TOKEN", ""),
	}
	if err := run(c, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, fail("Error:"), err)
		os.Exit(1)
	}
}

func need(args []string, n int, form string) error {
	if len(args) < n {
		return fmt.Errorf("usage: %s", form)
	}
	return nil
}

func run(c *client, cmd string, args []string) error {
	switch cmd {
	case "register", "login":
		if err := need(args, 1, cmd+" <username>"); err != nil {
			return err
		}
		password, err := readPassword()
		if err != nil {
			return err
		}
		body := map[string]string{"name": args[0], "password": password}
		if cmd == "register" {
			if _, err := c.do(fiber.MethodPost, "/api/auth/CreateUser", body); err != nil {
				return err
			}
			fmt.Println(ok("User created:"), args[0])
			return nil
		}
		env, err := c.do(fiber.MethodPost, "/api/auth/login", body)
		if err != nil {
			return err
		}
		var data struct {
			Token string `json:"token"`
		}
		if err := json.Unmarshal(env.Data, &data); err != nil {
			return err
		}
		fmt.Println(ok("Logged in. Run:"))
		fmt.Printf("export LEDGER_TOKEN=%s\n", data.Token)
	case "people":
		env, err := c.do(fiber.MethodGet, "/api/Pessoa", nil)
		if err != nil {
			return err
		}
		var people []struct {
			ID    string `json:"id"`
			Name  string `json:"nome"`
			Conta *struct {
				ID    string          `json:"id"`
				Saldo decimal.Decimal `json:"saldo"`
			} `json:"conta"`
		}
		if err := json.Unmarshal(env.Data, &people); err != nil {
			return err
		}
		for _, p := range people {
			if p.Conta == nil {
				fmt.Printf("%s  %-24s  %s\n", p.ID, p.Name, info("no account"))
				continue
			}
			fmt.Printf("%s  %-24s  account %s  balance %s\n", p.ID, p.Name, p.Conta.ID, p.Conta.Saldo.StringFixed(2))
		}
	case "accounts":
		env, err := c.do(fiber.MethodGet, "/Conta", nil)
		if err != nil {
			return err
		}
		var accounts []struct {
			ID       string          `json:"id"`
			PersonID string          `json:"pessoaId"`
			Saldo    decimal.Decimal `json:"saldo"`
		}
		if err := json.Unmarshal(env.Data, &accounts); err != nil {
			return err
		}
		for _, a := range accounts {
			fmt.Printf("%s  person %s  balance %s\n", a.ID, a.PersonID, a.Saldo.StringFixed(2))
		}
	case "create":
		if err := need(args, 2, "create <name> <balance>"); err != nil {
			return err
		}
		balance, err := parseAmount(args[1])
		if err != nil {
			return err
		}
		env, err := c.do(fiber.MethodPost, "/api/Pessoa", map[string]any{"nome": args[0], "saldoInicial": balance})
		if err != nil {
			return err
		}
		var data struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(env.Data, &data); err != nil {
			return err
		}
		fmt.Println(ok("Person created:"), data.ID)
	case "balance":
		if err := need(args, 1, "balance <personId>"); err != nil {
			return err
		}
		id, err := parseUUID(args[0])
		if err != nil {
			return err
		}
		env, err := c.do(fiber.MethodGet, "/Conta/"+id.String()+"/saldo", nil)
		if err != nil {
			return err
		}
		var data struct {
			Name      string          `json:"nome"`
			AccountID string          `json:"contaId"`
			Saldo     decimal.Decimal `json:"saldo"`
		}
		if err := json.Unmarshal(env.Data, &data); err != nil {
			return err
		}
		fmt.Printf("%s (account %s): %s\n", data.Name, data.AccountID, info(data.Saldo.StringFixed(2)))
	case "credit", "debit":
		if err := need(args, 2, cmd+" <accountId> <amount>"); err != nil {
			return err
		}
		id, err := parseUUID(args[0])
		if err != nil {
			return err
		}
		amount, err := parseAmount(args[1])
		if err != nil {
			return err
		}
		path := "/Conta/" + id.String() + "/credito"
		if cmd == "debit" {
			path = "/Conta/" + id.String() + "/debito"
		}
		env, err := c.do(fiber.MethodPost, path, map[string]any{"valor": amount})
		if err != nil {
			return err
		}
		var data struct {
			Saldo decimal.Decimal `json:"saldo"`
		}
		if err := json.Unmarshal(env.Data, &data); err != nil {
			return err
		}
		fmt.Println(ok(cmd+" ok."), "New balance:", info(data.Saldo.StringFixed(2)))
	case "delete-person", "delete-account":
		if err := need(args, 1, cmd+" <id>"); err != nil {
			return err
		}
		id, err := parseUUID(args[0])
		if err != nil {
			return err
		}
		path := "/api/Pessoa/" + id.String()
		if cmd == "delete-account" {
			path = "/Conta/" + id.String()
		}
		if _, err := c.do(fiber.MethodDelete, path, nil); err != nil {
			return err
		}
		fmt.Println(ok("Deleted"), id)
	default:
		fmt.Println(usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}
