package main

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	amount, err := parseAmount("50.50")
	require.NoError(t, err)
	assert.Equal(t, "50.5", amount.String())

	_, err = parseAmount("fifty")
	assert.Error(t, err)
}

func TestParseUUID(t *testing.T) {
	_, err := parseUUID("not-a-uuid")
	assert.EqualError(t, err, `invalid id "not-a-uuid"`)
}

func TestRun_ArgumentErrors(t *testing.T) {
	c := &client{baseURL: "http://127.0.0.1:1"}
	assert.EqualError(t, run(c, "credit", []string{"x"}), "usage: credit <accountId> <amount>")
	assert.EqualError(t, run(c, "balance", nil), "usage: balance <personId>")
	assert.EqualError(t, run(c, "debit", []string{"bad", "1"}), `invalid id "bad"`)
	assert.Error(t, run(c, "bogus", nil))
}

func TestClient_Do(t *testing.T) {
	app := fiber.New()
	app.Get("/ok", func(c *fiber.Ctx) error {
		assert.Equal(t, "Bearer tkn", c.Get(fiber.HeaderAuthorization))
		return c.JSON(fiber.Map{"message": "fine", "data": fiber.Map{"saldo": "10"}})
	})
	app.Get("/bad", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"title": "Failed to debit", "detail": "insufficient funds"})
	})
	go func() { _ = app.Listen("127.0.0.1:38471") }()
	t.Cleanup(func() { _ = app.Shutdown() })

	c := &client{baseURL: "http://127.0.0.1:38471", token: "tkn"}
	require.Eventually(t, func() bool {
		_, err := c.do(fiber.MethodGet, "/ok", nil)
		return err == nil
	}, 2*time.Second, 50*time.Millisecond)

	env, err := c.do(fiber.MethodGet, "/ok", nil)
	require.NoError(t, err)
	var data map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "10", data["saldo"])

	_, err = c.do(fiber.MethodGet, "/bad", nil)
	assert.EqualError(t, err, "Failed to debit (400): insufficient funds")
}
