package materials

import (
	"bytes"
	"testing"

	"github.com/ginjaninja78/locator-check/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sliceRows struct {
	rows []types.Row
	pos  int
}

func (s *sliceRows) Next() bool {
	if s.pos >= len(s.rows) {
		return false
	}
	s.pos++
	return true
}

func (s *sliceRows) Row() types.Row { return s.rows[s.pos-1] }
func (s *sliceRows) Err() error     { return nil }

func article(n int, code, desc string) types.Row {
	fields := make([]string, 25)
	fields[1] = code
	fields[2] = desc
	return types.Row{Number: n, Fields: fields}
}

func TestClassify(t *testing.T) {
	assert.Equal(t, "formica", Classify("Formica blanca 0.8mm"))
	assert.Equal(t, "canto", Classify("CANTO PVC 22mm"))
	assert.Equal(t, "madecanto", Classify("MADECANTO roble"))
	assert.Equal(t, "supercor", Classify("duralam gris"))
	assert.Equal(t, "pintura", Classify("PINTURA epoxi negra"))
	assert.Equal(t, "vidrio", Classify("VIDRIO templado"))
	assert.Equal(t, "tela", Classify("TELA azul"))
	assert.Equal(t, "", Classify("TORNILLO 3x16"))
	assert.Equal(t, "", Classify(" FORMICA"))
}

func TestScan(t *testing.T) {
	rows := &sliceRows{rows: []types.Row{
		article(2, "22000001", "FORMICA BLANCA"),
		article(3, "22000002", "FORMICA BLANCA"),
		article(4, "22000003", "Formica negra"),
		article(5, "C1", "\x1fCANTO PVC "),
		article(6, "22000004", "CANTO GENERICO"),
		article(7, "22000005", "codigo inactivo tela"),
		article(8, "22000006", "TORNILLO"),
		{Number: 9, Fields: []string{"0", "22000007", "FORMICA ROJA"}},
	}}

	summary, err := Scan(rows, nil)
	require.NoError(t, err)

	assert.Equal(t, 4, summary.Articles)
	assert.Equal(t, 2, summary.Excluded)

	formica := summary.Type("formica")
	require.NotNil(t, formica)
	assert.Equal(t, 3, formica.Rows)
	assert.Equal(t, []string{"FORMICA BLANCA", "Formica negra"}, formica.Descriptions)

	canto := summary.Type("canto")
	require.NotNil(t, canto)
	assert.Equal(t, []string{"CANTO PVC"}, canto.Descriptions)

	assert.Nil(t, summary.Type("tela"))
}

func TestWrite(t *testing.T) {
	rows := &sliceRows{rows: []types.Row{
		article(2, "22000001", "PINTURA A"),
		article(3, "22000002", "FORMICA A"),
		article(4, "22000003", "FORMICA B"),
		article(5, "22000004", "FORMICA C"),
	}}

	summary, err := Scan(rows, nil)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, Write(&out, summary))

	want := "Articles: 4\n" +
		"\nformica: 3 rows, 3 distinct\n" +
		"  - FORMICA A\n" +
		"  - FORMICA B\n" +
		"\npintura: 1 rows, 1 distinct\n" +
		"  - PINTURA A\n"
	assert.Equal(t, want, out.String())
}
