package builtins

import "testing"

func TestLoadParsesEmbeddedTable(t *testing.T) {
	env, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(env.All()) == 0 {
		t.Fatal("expected at least one builtin")
	}
}

func TestNativeNamesCoversEveryFamily(t *testing.T) {
	env := MustLoad()
	names := env.NativeNames()
	want := []string{"print", "input", "len", "range", "fs_read", "os_env", "http_get", "gui_alert", "db_query", "crypto_hash", "auth_check", "thread_spawn", "json_parse", "str_upper"}
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	for _, w := range want {
		if !set[w] {
			t.Errorf("NativeNames missing %q", w)
		}
	}
}

func TestIsNativeRejectsUnknownName(t *testing.T) {
	env := MustLoad()
	if env.IsNative("totally_unknown") {
		t.Fatal("unexpected native classification")
	}
}

func TestPrintIsVariadicVoidFunction(t *testing.T) {
	env := MustLoad()
	for _, b := range env.All() {
		if b.Name != "print" {
			continue
		}
		if !b.Variadic {
			t.Error("print should be variadic")
		}
		if b.Type.Return.String() != "Void" {
			t.Errorf("print return = %s, want Void", b.Type.Return)
		}
		return
	}
	t.Fatal("print not found in builtin table")
}
