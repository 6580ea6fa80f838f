package view_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/delaneyj/pipes/pipe"
	"github.com/delaneyj/pipes/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticElement(t *testing.T) {
	b := view.NewBuilder()
	n, err := b.Element("p", view.Attrs{"id": 1, "class": "x"}, "hi ", 3, true, nil, 1.5)
	require.NoError(t, err)
	assert.Equal(t, `<p class="x" id="1">hi 3true1.5</p>`, view.HTML(n))
	assert.Equal(t, "hi 3true1.5", n.TextContent())

	var buf bytes.Buffer
	view.Render(&buf, n)
	assert.Equal(t, view.HTML(n), buf.String())
}

func TestEscaping(t *testing.T) {
	b := view.NewBuilder()
	n, err := b.Element("p", view.Attrs{"title": "a<b"}, "<b>&")
	require.NoError(t, err)
	assert.Equal(t, `<p title="a&lt;b">&lt;b&gt;&amp;</p>`, view.HTML(n))
}

func TestNestedElements(t *testing.T) {
	b := view.NewBuilder()
	li1, err := b.Element("li", nil, "a")
	require.NoError(t, err)
	li2, err := b.Element("li", nil, "b")
	require.NoError(t, err)
	ul, err := b.Element("ul", nil, li1, []*view.Node{li2}, []string{"c", "d"})
	require.NoError(t, err)
	assert.Equal(t, `<ul><li>a</li><li>b</li>cd</ul>`, view.HTML(ul))
	assert.Same(t, ul, li1.Parent)
}

func TestBindText(t *testing.T) {
	b := view.NewBuilder()
	count := pipe.NewCell(1)
	n, err := b.Element("span", nil, "count: ", view.Bind(count))
	require.NoError(t, err)
	assert.Equal(t, `<span>count: <!--pipe-1-->1<!--/pipe-1--></span>`, view.HTML(n))

	count.Set(2)
	assert.Equal(t, `<span>count: <!--pipe-1-->2<!--/pipe-1--></span>`, view.HTML(n))
	assert.Equal(t, 1, count.Subscribers())
}

// should keep the existing nodes when the output would not change
func TestBindSkipsUnchangedOutput(t *testing.T) {
	b := view.NewBuilder()
	count := pipe.NewCell(1)
	size := pipe.Project(count, func(v int) string {
		if v > 10 {
			return "big"
		}
		return "small"
	})
	n, err := b.Element("span", nil, view.Bind(size))
	require.NoError(t, err)
	text := n.Children[1]
	assert.Equal(t, "small", text.Data)

	count.Set(2)
	assert.Same(t, text, n.Children[1])

	count.Set(20)
	assert.NotSame(t, text, n.Children[1])
	assert.Equal(t, "big", n.Children[1].Data)
	assert.Nil(t, text.Parent)
}

func TestBindList(t *testing.T) {
	b := view.NewBuilder()
	items := pipe.NewCell([]string{"a", "b"})
	lis := pipe.Map(items, func(s string) *view.Node {
		li, err := b.Element("li", nil, s)
		require.NoError(t, err)
		return li
	})
	ul, err := b.Element("ul", nil, view.Bind(lis))
	require.NoError(t, err)
	assert.Equal(t, `<ul><!--pipe-1--><li>a</li><li>b</li><!--/pipe-1--></ul>`, view.HTML(ul))

	items.Set([]string{"c"})
	assert.Equal(t, `<ul><!--pipe-1--><li>c</li><!--/pipe-1--></ul>`, view.HTML(ul))
}

// should dispose bindings that belonged to replaced content
func TestNestedBindingsAreDisposed(t *testing.T) {
	b := view.NewBuilder()
	show := pipe.NewCell(true)
	name := pipe.NewCell("x")
	body := pipe.Project(show, func(visible bool) view.Child {
		if visible {
			return view.Bind(name)
		}
		return view.Literal("hidden")
	})
	div, err := b.Element("div", nil, view.Bind(body))
	require.NoError(t, err)
	assert.Equal(t, `<div><!--pipe-1--><!--pipe-2-->x<!--/pipe-2--><!--/pipe-1--></div>`, view.HTML(div))
	assert.Equal(t, 1, name.Subscribers())

	name.Set("y")
	assert.Equal(t, `<div><!--pipe-1--><!--pipe-2-->y<!--/pipe-2--><!--/pipe-1--></div>`, view.HTML(div))

	show.Set(false)
	assert.Equal(t, `<div><!--pipe-1-->hidden<!--/pipe-1--></div>`, view.HTML(div))
	assert.Equal(t, 0, name.Subscribers())

	show.Set(true)
	assert.Equal(t, `<div><!--pipe-1--><!--pipe-3-->y<!--/pipe-3--><!--/pipe-1--></div>`, view.HTML(div))
	assert.Equal(t, 1, name.Subscribers())
}

// should dispose bindings of elements created while computing a bound value
func TestElementsBuiltInsideRegionAreOwned(t *testing.T) {
	b := view.NewBuilder()
	which := pipe.NewCell(0)
	labels := []*pipe.Cell[string]{pipe.NewCell("zero"), pipe.NewCell("one")}
	content := pipe.Project(which, func(i int) *view.Node {
		em, err := b.Element("em", view.Attrs{"title": view.Bind(labels[i])})
		require.NoError(t, err)
		return em
	})
	div, err := b.Element("div", nil, view.Bind(content))
	require.NoError(t, err)
	assert.Equal(t, `<div><!--pipe-1--><em title="zero"></em><!--/pipe-1--></div>`, view.HTML(div))
	assert.Equal(t, 1, labels[0].Subscribers())

	which.Set(1)
	assert.Equal(t, `<div><!--pipe-1--><em title="one"></em><!--/pipe-1--></div>`, view.HTML(div))
	assert.Equal(t, 0, labels[0].Subscribers())
	assert.Equal(t, 1, labels[1].Subscribers())
}

func TestBindAttr(t *testing.T) {
	b := view.NewBuilder()
	class := pipe.NewCell("a")
	div, err := b.Element("div", view.Attrs{"class": view.Bind(class)})
	require.NoError(t, err)
	v, ok := div.Attr("class")
	require.True(t, ok)
	assert.Equal(t, "a", v)

	class.Set("b")
	v, _ = div.Attr("class")
	assert.Equal(t, "b", v)

	b.Dispose()
	assert.Equal(t, 0, class.Subscribers())
	class.Set("c")
	v, _ = div.Attr("class")
	assert.Equal(t, "b", v)
}

func TestDisposeKeepsLastContent(t *testing.T) {
	b := view.NewBuilder()
	count := pipe.NewCell(1)
	n, err := b.Element("span", nil, view.Bind(count))
	require.NoError(t, err)

	b.Dispose()
	assert.Equal(t, 0, count.Subscribers())
	count.Set(2)
	assert.Equal(t, `<span><!--pipe-1-->1<!--/pipe-1--></span>`, view.HTML(n))
}

func TestAwait(t *testing.T) {
	b := view.NewBuilder()
	f := view.NewFuture()
	title := view.NewFuture()
	div, err := b.Element("div", view.Attrs{"title": view.Await(title)}, view.Await(f))
	require.NoError(t, err)
	assert.Equal(t, `<div><!--pipe-1--><!--/pipe-1--></div>`, view.HTML(div))

	count := pipe.NewCell(7)
	f.Resolve(view.Bind(count))
	title.Resolve(view.Literal("t"))
	assert.Equal(t, `<div title="t"><!--pipe-1--><!--pipe-2-->7<!--/pipe-2--><!--/pipe-1--></div>`, view.HTML(div))
	assert.True(t, f.Resolved())

	// only the first resolution counts
	f.Resolve(view.Literal("late"))
	count.Set(8)
	assert.Equal(t, `<div title="t"><!--pipe-1--><!--pipe-2-->8<!--/pipe-2--><!--/pipe-1--></div>`, view.HTML(div))

	b.Dispose()
	assert.Equal(t, 0, count.Subscribers())
}

func TestAwaitResolvedFuture(t *testing.T) {
	b := view.NewBuilder()
	f := view.NewFuture()
	f.Resolve(view.Literal("ready"))
	div, err := b.Element("div", nil, view.Await(f))
	require.NoError(t, err)
	assert.Equal(t, `<div>ready</div>`, view.HTML(div))
}

func TestAwaitAfterDispose(t *testing.T) {
	b := view.NewBuilder()
	f := view.NewFuture()
	div, err := b.Element("div", nil, view.Await(f))
	require.NoError(t, err)

	b.Dispose()
	f.Resolve(view.Literal("late"))
	assert.Equal(t, `<div><!--pipe-1--><!--/pipe-1--></div>`, view.HTML(div))
}

func TestThunk(t *testing.T) {
	b := view.NewBuilder()
	calls := 0
	lazy := view.Thunk(func() view.Child {
		calls++
		return view.Literal("lazy")
	})
	assert.Equal(t, 0, calls)
	div, err := b.Element("div", nil, lazy)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, `<div>lazy</div>`, view.HTML(div))
}

func TestChildKinds(t *testing.T) {
	assert.Equal(t, view.LiteralChild, view.Literal(1).Kind())
	assert.Equal(t, view.FutureChild, view.Await(view.NewFuture()).Kind())
	assert.Equal(t, view.PipeChild, view.Bind(pipe.NewCell(1)).Kind())
	assert.Equal(t, view.ThunkChild, view.Thunk(func() view.Child { return view.Literal(nil) }).Kind())
	assert.Equal(t, "future", view.FutureChild.String())
}

func TestUnsupportedValue(t *testing.T) {
	b := view.NewBuilder()
	_, err := b.Element("div", nil, struct{ X int }{1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, view.ErrUnsupportedValue))
	var uv *view.UnsupportedValueError
	require.ErrorAs(t, err, &uv)
	assert.Equal(t, struct{ X int }{1}, uv.Value)

	_, err = b.Element("div", view.Attrs{"data": map[string]int{}})
	require.ErrorIs(t, err, view.ErrUnsupportedValue)
}

// should not leak bindings of an element that failed to build
func TestFailedElementReleasesBindings(t *testing.T) {
	b := view.NewBuilder()
	count := pipe.NewCell(1)
	_, err := b.Element("div", view.Attrs{"title": view.Bind(count)}, view.Bind(count), make(chan int))
	require.ErrorIs(t, err, view.ErrUnsupportedValue)
	assert.Equal(t, 0, count.Subscribers())
}

func TestUnsupportedValueOnUpdatePanics(t *testing.T) {
	b := view.NewBuilder()
	v := pipe.NewCell[any]("ok")
	_, err := b.Element("div", nil, view.Bind(v))
	require.NoError(t, err)
	assert.Panics(t, func() {
		v.Set(func() {})
	})
}

func TestAnchorsArePerBuilder(t *testing.T) {
	c := pipe.NewCell("x")
	for range 2 {
		b := view.NewBuilder()
		n, err := b.Element("i", nil, view.Bind(c))
		require.NoError(t, err)
		assert.Equal(t, `<i><!--pipe-1-->x<!--/pipe-1--></i>`, view.HTML(n))
	}
}
