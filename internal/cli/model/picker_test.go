package model

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/synapse/internal/cli/styles"
	"github.com/bnema/synapse/internal/domain/entity"
)

type fakeSearcher struct {
	queries []string
}

func (f *fakeSearcher) Search(_ context.Context, query string, _ int) ([]entity.AppEntry, error) {
	f.queries = append(f.queries, query)
	if query == "" {
		return testApps(), nil
	}
	var out []entity.AppEntry
	for _, a := range testApps() {
		if strings.Contains(strings.ToLower(a.Name), strings.ToLower(query)) {
			out = append(out, a)
		}
	}
	return out, nil
}

func testApps() []entity.AppEntry {
	return []entity.AppEntry{
		{Category: "Internet", Name: "Firefox", Command: "firefox"},
		{Category: "Internet", Name: "Thunderbird", Command: "thunderbird"},
		{Category: "Dev Tools", Name: "Visual Studio Code", Command: "code"},
		{Category: "Utilities", Name: "Files", Command: "nautilus"},
	}
}

func newTestPicker(t *testing.T) (*PickerModel, *fakeSearcher) {
	t.Helper()
	searcher := &fakeSearcher{}
	p := NewPickerModel(context.Background(), styles.NewTheme(), searcher, "K3", 48, 80, 30)
	p, _ = p.Update(p.Init()())
	return p, searcher
}

func send(p *PickerModel, msgs ...tea.Msg) (*PickerModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		p, cmd = p.Update(msg)
	}
	return p, cmd
}

func selectedLabel(t *testing.T, p *PickerModel) string {
	t.Helper()
	item, ok := p.list.SelectedItem().(styles.PickerItem)
	require.True(t, ok)
	return item.Label
}

func TestPicker_ListsCategoriesThenCustom(t *testing.T) {
	p, searcher := newTestPicker(t)

	assert.Equal(t, []string{""}, searcher.queries)
	items := p.list.Items()
	require.Len(t, items, 4)
	assert.Equal(t, "Dev Tools", items[0].(styles.PickerItem).Label)
	assert.Equal(t, "Internet", items[1].(styles.PickerItem).Label)
	assert.Equal(t, "2 apps", items[1].(styles.PickerItem).Detail)
	assert.Equal(t, customScriptLabel, items[3].(styles.PickerItem).Label)
}

func TestPicker_ChooseAppFromCategory(t *testing.T) {
	p, _ := newTestPicker(t)

	p, _ = send(p, keyMsg("down"))
	require.Equal(t, "Internet", selectedLabel(t, p))

	p, _ = send(p, keyMsg("enter"))
	require.Equal(t, stageApps, p.stage)
	require.Equal(t, "Firefox", selectedLabel(t, p))

	_, cmd := send(p, keyMsg("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, pickerDoneMsg{code: 48, name: "Open_Firefox", content: "exec firefox"}, cmd())
}

func TestPicker_SearchAcrossCategories(t *testing.T) {
	p, searcher := newTestPicker(t)
	p, _ = send(p, keyMsg("enter")) // Dev Tools

	p, cmd := send(p, keyMsg("f"))
	require.NotNil(t, cmd)
	assert.Equal(t, "f", p.query)

	p, _ = send(p, appsLoadedMsg{query: "f", entries: []entity.AppEntry{
		{Category: "Internet", Name: "Firefox", Command: "firefox"},
		{Category: "Utilities", Name: "Files", Command: "nautilus"},
	}})
	assert.Len(t, p.list.Items(), 2)

	// Results for an older query are ignored.
	p, _ = send(p, appsLoadedMsg{query: "x", entries: nil})
	assert.Len(t, p.list.Items(), 2)
	assert.NotEmpty(t, searcher.queries)
}

func TestPicker_EmptyScriptRejected(t *testing.T) {
	p, _ := newTestPicker(t)
	p, _ = send(p, keyMsg("down"), keyMsg("down"), keyMsg("down"), keyMsg("enter"))
	require.Equal(t, stageScript, p.stage)

	p, cmd := send(p, keyMsg("ctrl+s"))

	assert.Nil(t, cmd)
	assert.ErrorIs(t, p.err, errEmptyScript)
}

func TestPicker_EscapeWalksBack(t *testing.T) {
	p, _ := newTestPicker(t)
	p, _ = send(p, keyMsg("enter"))
	require.Equal(t, stageApps, p.stage)

	p, _ = send(p, keyMsg("esc"))
	require.Equal(t, stageCategories, p.stage)

	_, cmd := send(p, keyMsg("esc"))
	require.NotNil(t, cmd)
	assert.Equal(t, pickerDoneMsg{code: 48, cancelled: true}, cmd())
}
