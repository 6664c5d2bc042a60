package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestLookupCmd(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"lookup", "regina"}, "200 application/json\n{\"name\":\"regina\",\"price\":12}\n"},
		{[]string{"lookup", "unknown"}, "400 application/json\n{\"error\":\"Pizza not found\"}\n"},
		{[]string{"lookup"}, "400 application/json\n{\"error\":\"Pizza name not provided\"}\n"},
	}
	for _, c := range cases {
		got, err := run(t, "", c.args...)
		if err != nil {
			t.Fatalf("%v: %v", c.args, err)
		}
		if got != c.want {
			t.Errorf("%v = %q, want %q", c.args, got, c.want)
		}
	}
}

func TestListCmd(t *testing.T) {
	got, err := run(t, "", "list")
	if err != nil {
		t.Fatal(err)
	}
	want := "veggie   10\nregina   12\ndeluxe   14\n"
	if got != want {
		t.Errorf("list = %q, want %q", got, want)
	}
}

type proxyResponse struct {
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers"`
	Body       string            `json:"body"`
}

func TestInvokeCmdStdin(t *testing.T) {
	event := `{"resource":"/pizza/{pizza_name}","path":"/pizza/deluxe","httpMethod":"GET","pathParameters":{"pizza_name":"deluxe"},"requestContext":{"requestId":"abc"}}`
	got, err := run(t, event, "invoke")
	if err != nil {
		t.Fatal(err)
	}
	var resp proxyResponse
	if err := json.Unmarshal([]byte(got), &resp); err != nil {
		t.Fatalf("output not JSON: %v\n%s", err, got)
	}
	if resp.StatusCode != 200 || resp.Body != `{"name":"deluxe","price":14}` || resp.Headers["content-type"] != "application/json" {
		t.Errorf("response = %+v", resp)
	}
}

func TestInvokeCmdFileV2(t *testing.T) {
	p := filepath.Join(t.TempDir(), "event.json")
	if err := os.WriteFile(p, []byte(`{"version":"2.0","routeKey":"GET /pizza","rawPath":"/pizza","queryStringParameters":{"pizza_name":"unknown"}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := run(t, "", "invoke", "--payload", "v2", "--event", p)
	if err != nil {
		t.Fatal(err)
	}
	var resp proxyResponse
	if err := json.Unmarshal([]byte(got), &resp); err != nil {
		t.Fatalf("output not JSON: %v\n%s", err, got)
	}
	if resp.StatusCode != 400 || resp.Body != `{"error":"Pizza not found"}` {
		t.Errorf("response = %+v", resp)
	}
}

func TestInvokeCmdErrors(t *testing.T) {
	if _, err := run(t, "not json", "invoke"); err == nil {
		t.Error("bad event accepted")
	}
	if _, err := run(t, "{}", "invoke", "--payload", "v3"); err == nil {
		t.Error("unknown payload accepted")
	}
	if _, err := run(t, "", "invoke", "--event", filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("missing file accepted")
	}
}

func TestLambdaCmdRejectsPayload(t *testing.T) {
	if _, err := run(t, "", "lambda", "--payload", "v9"); err == nil {
		t.Error("unknown payload accepted")
	}
}

func TestReadEvent(t *testing.T) {
	const event = `{"pathParameters":{"pizza_name":"regina"}}`

	b, err := readEvent(strings.NewReader(event), "-")
	if err != nil {
		t.Fatalf("stdin: %v", err)
	}
	if string(b) != event {
		t.Errorf("stdin bytes = %q", b)
	}

	p := filepath.Join(t.TempDir(), "event.json")
	if err := os.WriteFile(p, []byte(event), 0o644); err != nil {
		t.Fatal(err)
	}
	b, err = readEvent(strings.NewReader(""), p)
	if err != nil {
		t.Fatalf("file: %v", err)
	}
	if string(b) != event {
		t.Errorf("file bytes = %q", b)
	}

	if _, err := readEvent(nil, filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("missing file returned nil error")
	}
}
