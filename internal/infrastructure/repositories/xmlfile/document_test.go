//go:build unit

package xmlfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/refbump/internal/domain/entities"
	"github.com/rios0rios0/refbump/internal/infrastructure/repositories/xmlfile"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("should find elements by local name at any depth", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "a.xml")
		content := `<root xmlns="urn:x"><group><item id="1"/></group><item id="2"/></root>`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		// when
		doc, err := xmlfile.Load(path)

		// then
		require.NoError(t, err)
		items := doc.ElementsByTag("item")
		require.Len(t, items, 2)
		assert.Equal(t, "1", xmlfile.AttrValue(items[0], "id"))
		assert.Equal(t, "2", xmlfile.AttrValue(items[1], "id"))
		assert.Empty(t, xmlfile.AttrValue(items[0], "missing"))
	})

	t.Run("should report malformed content as a parse failure", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "a.xml")
		require.NoError(t, os.WriteFile(path, []byte("<root><open></root>"), 0o644))

		// when
		_, err := xmlfile.Load(path)

		// then
		require.ErrorIs(t, err, entities.ErrParseFailure)
	})

	t.Run("should keep the byte order mark when saving", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "a.xml")
		bom := []byte{0xEF, 0xBB, 0xBF}
		require.NoError(t, os.WriteFile(path, append(bom, []byte(`<root><v>1</v></root>`)...), 0o644))
		doc, err := xmlfile.Load(path)
		require.NoError(t, err)

		// when
		require.NoError(t, doc.SetText(doc.ElementsByTag("v")[0], "2"))
		written, err := doc.Save()

		// then
		require.NoError(t, err)
		assert.True(t, written)
		data, _ := os.ReadFile(path)
		assert.Equal(t, append(bom, []byte(`<root><v>2</v></root>`)...), data)
	})

	t.Run("should only replace the edited values and keep the rest of the bytes", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "a.xml")
		content := "<?xml version=\"1.0\" encoding=\"utf-8\"?>\r\n" +
			"<root Condition=\" '$(Configuration)' == 'Debug' \">\r\n" +
			"  <item id='1' version='1.0' />\r\n" +
			"  <item id=\"2\" />\r\n" +
			"  <v>\r\n    1.0\r\n  </v>\r\n" +
			"  <!-- keep &amp; me -->\r\n" +
			"</root>\r\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		doc, err := xmlfile.Load(path)
		require.NoError(t, err)
		items := doc.ElementsByTag("item")

		// when
		require.NoError(t, doc.SetAttr(items[0], "version", "2.0"))
		require.NoError(t, doc.SetAttr(items[1], "version", "3.0"))
		require.NoError(t, doc.SetText(doc.ElementsByTag("v")[0], "4.0"))
		written, err := doc.Save()

		// then
		require.NoError(t, err)
		assert.True(t, written)
		expected := "<?xml version=\"1.0\" encoding=\"utf-8\"?>\r\n" +
			"<root Condition=\" '$(Configuration)' == 'Debug' \">\r\n" +
			"  <item id='1' version='2.0' />\r\n" +
			"  <item id=\"2\" version=\"3.0\" />\r\n" +
			"  <v>\r\n    4.0\r\n  </v>\r\n" +
			"  <!-- keep &amp; me -->\r\n" +
			"</root>\r\n"
		data, _ := os.ReadFile(path)
		assert.Equal(t, expected, string(data))
		assert.Equal(t, "3.0", xmlfile.AttrValue(items[1], "version"))
		assert.Equal(t, "4.0", xmlfile.TrimmedText(doc.ElementsByTag("v")[0]))
	})

	t.Run("should escape values for the quote style of the attribute", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "a.xml")
		require.NoError(t, os.WriteFile(path, []byte(`<root a='x' b="y"/>`), 0o644))
		doc, err := xmlfile.Load(path)
		require.NoError(t, err)

		// when
		require.NoError(t, doc.SetAttr(doc.Root(), "a", `it's "&"`))
		require.NoError(t, doc.SetAttr(doc.Root(), "b", `it's "&"`))
		_, err = doc.Save()

		// then
		require.NoError(t, err)
		data, _ := os.ReadFile(path)
		assert.Equal(t, `<root a='it&apos;s "&amp;"' b="it's &quot;&amp;&quot;"/>`, string(data))
	})

	t.Run("should not write when nothing was edited", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "a.xml")
		require.NoError(t, os.WriteFile(path, []byte(`<root><v>1</v></root>`), 0o644))
		doc, err := xmlfile.Load(path)
		require.NoError(t, err)

		// when
		written, err := doc.Save()

		// then
		require.NoError(t, err)
		assert.False(t, written)
	})

	t.Run("should refuse to set text on a self closing element", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "a.xml")
		require.NoError(t, os.WriteFile(path, []byte(`<root><v /></root>`), 0o644))
		doc, err := xmlfile.Load(path)
		require.NoError(t, err)

		// when
		err = doc.SetText(doc.ElementsByTag("v")[0], "1")

		// then
		require.Error(t, err)
	})
}
