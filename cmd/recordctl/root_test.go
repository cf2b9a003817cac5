package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mmynk/chatrecords/internal/document"
	"github.com/mmynk/chatrecords/internal/models"
)

// run executes the command tree with fresh flag state and returns stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	user = models.UserProfile{}
	group = models.GroupDescriptor{}
	format = formatText
	logLevel = "error"

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestUserCommand(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		out, err := run(t, "", "user", "--id", "7", "--full-name", "Ada Lovelace",
			"--email", "ada@example.com", "--age", "36", "--city", "London")
		if err != nil {
			t.Fatalf("user failed: %v", err)
		}

		want := "User{id=7, fullname='Ada Lovelace', email='ada@example.com', age=36, city='London'}\n"
		if out != want {
			t.Errorf("got %q, want %q", out, want)
		}
	})

	t.Run("json", func(t *testing.T) {
		out, err := run(t, "", "user", "--format", "json", "--id", "7", "--full-name", "Ada Lovelace")
		if err != nil {
			t.Fatalf("user failed: %v", err)
		}

		doc, err := document.Unmarshal([]byte(out))
		if err != nil {
			t.Fatalf("output is not a document: %v\n%s", err, out)
		}
		u, err := document.DecodeUser(doc)
		if err != nil {
			t.Fatalf("DecodeUser failed: %v", err)
		}
		if u.GetID() != 7 || u.GetFullName() != "Ada Lovelace" || u.GetCity() != "" {
			t.Errorf("unexpected profile %s", u)
		}
		if _, ok := doc.GetFields()["city"]; !ok {
			t.Errorf("expected empty city key in %s", out)
		}
	})

	t.Run("defaults to zero value", func(t *testing.T) {
		out, err := run(t, "", "user")
		if err != nil {
			t.Fatalf("user failed: %v", err)
		}
		want := (&models.UserProfile{}).String() + "\n"
		if out != want {
			t.Errorf("got %q, want %q", out, want)
		}
	})
}

func TestUserCommandRejectsOutOfRangeIntegers(t *testing.T) {
	for _, args := range [][]string{
		{"user", "--id", "3000000000"},
		{"user", "--age", "-3000000000"},
	} {
		if out, err := run(t, "", args...); err == nil {
			t.Errorf("expected error for %v, got output %q", args, out)
		}
	}

	// The largest accepted id survives a print/decode cycle.
	out, err := run(t, "", "user", "--format", "json", "--id", "2147483647")
	if err != nil {
		t.Fatalf("user failed: %v", err)
	}
	decoded, err := run(t, out, "decode", "user")
	if err != nil {
		t.Fatalf("decode of user output failed: %v", err)
	}
	if !strings.Contains(decoded, "id=2147483647") {
		t.Errorf("unexpected output %q", decoded)
	}
}

func TestGroupCommand(t *testing.T) {
	out, err := run(t, "", "group", "--name", "Engineers", "--description", "Systems chat")
	if err != nil {
		t.Fatalf("group failed: %v", err)
	}

	want := "GroupChat{groupName='Engineers', description='Systems chat'}\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestDecodeCommand(t *testing.T) {
	t.Run("stdin", func(t *testing.T) {
		out, err := run(t, `{"groupName": "Engineers", "description": "Systems chat"}`, "decode", "group")
		if err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		if !strings.Contains(out, "groupName='Engineers'") {
			t.Errorf("unexpected output %q", out)
		}
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "user.json")
		doc := `{"id": 7, "fullName": "Ada Lovelace", "email": "ada@example.com", "age": 36, "city": "London"}`
		if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
			t.Fatalf("failed to write document: %v", err)
		}

		out, err := run(t, "", "decode", "user", path)
		if err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		want := models.NewUserProfile(7, "Ada Lovelace", "ada@example.com", 36, "London").String() + "\n"
		if out != want {
			t.Errorf("got %q, want %q", out, want)
		}
	})

	t.Run("errors", func(t *testing.T) {
		cases := [][]string{
			{"decode", "channel"},
			{"decode", "user", filepath.Join(t.TempDir(), "missing.json")},
		}
		for _, args := range cases {
			if _, err := run(t, "{}", args...); err == nil {
				t.Errorf("expected error for %v", args)
			}
		}

		if _, err := run(t, `{"age": 36.5}`, "decode", "user"); err == nil {
			t.Error("expected error for fractional age")
		}
	})
}

func TestUnsupportedFormat(t *testing.T) {
	if _, err := run(t, "", "group", "--format", "yaml"); err == nil {
		t.Error("expected error for unsupported format")
	}
}
