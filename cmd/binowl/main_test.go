package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arloliu/binowl/errs"
	"github.com/arloliu/binowl/owl"
	"github.com/stretchr/testify/require"
)

const pizzaSource = `
iri: http://example.org/pizza
prefixes:
  "": http://example.org/pizza#
classes: [Pizza, Margherita, Topping, CheeseTopping]
object_properties: [hasTopping]
data_properties: [hasCalories]
individuals: [MyPizza, Mozzarella]
subclass_of:
  - {sub: Margherita, super: Pizza}
  - {sub: CheeseTopping, super: Topping}
disjoint_classes:
  - [Pizza, Topping]
class_assertions:
  - {class: Margherita, individual: MyPizza}
object_assertions:
  - {subject: MyPizza, property: hasTopping, object: Mozzarella}
data_assertions:
  - {subject: MyPizza, property: hasCalories, value: "850", datatype: "xsd:integer"}
labels:
  - {subject: Pizza, text: Pizza, lang: en}
  - {subject: Pizza, text: Pizza, lang: it}
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return stdout.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestEncodeDecode(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "pizza.yaml", pizzaSource)
	out := filepath.Join(dir, "pizza.bin")

	stdout, err := run(t, "encode", "--in", src, "--out", out, "--compression", "zstd")
	require.NoError(t, err)
	require.Contains(t, stdout, "16 axioms")

	stdout, err = run(t, "decode", out)
	require.NoError(t, err)
	require.Contains(t, stdout, "Ontology(<http://example.org/pizza>)")
	require.Contains(t, stdout, "SubClassOf")
	require.Len(t, strings.Split(strings.TrimSpace(stdout), "\n"), 17)
}

func TestInspectAndStats(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "pizza.yaml", pizzaSource)
	cfg := writeFile(t, dir, "binowl.yaml", "byte_order: little\nsorted_dictionary: true\n")
	out := filepath.Join(dir, "pizza.bin")

	_, err := run(t, "--config", cfg, "encode", "-i", src, "-o", out)
	require.NoError(t, err)

	stdout, err := run(t, "inspect", out)
	require.NoError(t, err)
	require.Contains(t, stdout, "little")
	require.Contains(t, stdout, "ok=true")
	require.Regexp(t, `sorted dictionary\s+true`, stdout)
	require.Regexp(t, `axioms\s+16`, stdout)

	stdout, err = run(t, "stats", out)
	require.NoError(t, err)
	require.Contains(t, stdout, "total")
	require.Contains(t, stdout, "compression None")
}

func TestArchiveCommands(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "pizza.yaml", pizzaSource)
	encoded := filepath.Join(dir, "pizza.bin")
	store := filepath.Join(dir, "archive")

	_, err := run(t, "encode", "-i", src, "-o", encoded)
	require.NoError(t, err)

	stdout, err := run(t, "archive", "--path", store, "put", encoded)
	require.NoError(t, err)
	key := strings.TrimSpace(stdout)
	require.Len(t, key, 32)

	stdout, err = run(t, "archive", "--path", store, "list")
	require.NoError(t, err)
	require.Contains(t, stdout, key)
	require.Contains(t, stdout, "pizza.bin")

	restored := filepath.Join(dir, "restored.bin")
	_, err = run(t, "archive", "--path", store, "get", key, "-o", restored)
	require.NoError(t, err)

	want, err := os.ReadFile(encoded)
	require.NoError(t, err)
	got, err := os.ReadFile(restored)
	require.NoError(t, err)
	require.Equal(t, want, got)

	_, err = run(t, "archive", "--path", store, "delete", key)
	require.NoError(t, err)
	_, err = run(t, "archive", "--path", store, "get", key, "-o", restored)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestArchiveRequiresPath(t *testing.T) {
	_, err := run(t, "archive", "list")
	require.ErrorIs(t, err, errs.ErrInvalidConfig)
}

func TestInvalidConfig(t *testing.T) {
	cfg := writeFile(t, t.TempDir(), "bad.yaml", "compression: brotli\n")
	_, err := run(t, "--config", cfg, "version")
	require.ErrorIs(t, err, errs.ErrInvalidConfig)
}

func TestParseSource(t *testing.T) {
	doc, err := parseSource([]byte(pizzaSource))
	require.NoError(t, err)
	require.Equal(t, owl.NewIRI("http://example.org/pizza"), doc.IRI)
	require.Len(t, doc.Axioms, 16)
	require.Contains(t, doc.Axioms, owl.Axiom(owl.SubClassOf{
		Sub:   owl.Class(owl.IRI{Namespace: "http://example.org/pizza#", Fragment: "Margherita"}),
		Super: owl.Class(owl.IRI{Namespace: "http://example.org/pizza#", Fragment: "Pizza"}),
	}))

	_, err = parseSource([]byte("classes: [Pizza]\n"))
	require.ErrorIs(t, err, errs.ErrInvalidConfig, "bare names need a default prefix")

	_, err = parseSource([]byte("clases: [Pizza]\n"))
	require.ErrorIs(t, err, errs.ErrInvalidConfig)

	doc, err = parseSource([]byte("classes: [\"http://example.org/x#Y\", \"owl:Thing\"]\n"))
	require.NoError(t, err)
	require.Equal(t, owl.Axiom(owl.Declaration{Entity: owl.OWLThing}), doc.Axioms[1])
}
