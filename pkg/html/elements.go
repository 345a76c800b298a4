package html

import (
	"golang.org/x/net/html/atom"

	"github.com/domify-dev/domify/pkg/dom"
)

// Document structure

func Html(args ...any) *dom.Node     { return el(atom.Html, args) }
func Head(args ...any) *dom.Node     { return el(atom.Head, args) }
func Title(args ...any) *dom.Node    { return el(atom.Title, args) }
func Base(args ...any) *dom.Node     { return el(atom.Base, args) }
func Link(args ...any) *dom.Node     { return el(atom.Link, args) }
func Meta(args ...any) *dom.Node     { return el(atom.Meta, args) }
func Style(args ...any) *dom.Node    { return el(atom.Style, args) }
func Script(args ...any) *dom.Node   { return el(atom.Script, args) }
func Noscript(args ...any) *dom.Node { return el(atom.Noscript, args) }
func Body(args ...any) *dom.Node     { return el(atom.Body, args) }

// Sectioning

func Header(args ...any) *dom.Node  { return el(atom.Header, args) }
func Footer(args ...any) *dom.Node  { return el(atom.Footer, args) }
func Main(args ...any) *dom.Node    { return el(atom.Main, args) }
func Nav(args ...any) *dom.Node     { return el(atom.Nav, args) }
func Section(args ...any) *dom.Node { return el(atom.Section, args) }
func Article(args ...any) *dom.Node { return el(atom.Article, args) }
func Aside(args ...any) *dom.Node   { return el(atom.Aside, args) }
func Address(args ...any) *dom.Node { return el(atom.Address, args) }
func H1(args ...any) *dom.Node      { return el(atom.H1, args) }
func H2(args ...any) *dom.Node      { return el(atom.H2, args) }
func H3(args ...any) *dom.Node      { return el(atom.H3, args) }
func H4(args ...any) *dom.Node      { return el(atom.H4, args) }
func H5(args ...any) *dom.Node      { return el(atom.H5, args) }
func H6(args ...any) *dom.Node      { return el(atom.H6, args) }
func Hgroup(args ...any) *dom.Node  { return el(atom.Hgroup, args) }

// Text content

func Div(args ...any) *dom.Node        { return el(atom.Div, args) }
func P(args ...any) *dom.Node          { return el(atom.P, args) }
func Pre(args ...any) *dom.Node        { return el(atom.Pre, args) }
func Blockquote(args ...any) *dom.Node { return el(atom.Blockquote, args) }
func Ul(args ...any) *dom.Node         { return el(atom.Ul, args) }
func Ol(args ...any) *dom.Node         { return el(atom.Ol, args) }
func Li(args ...any) *dom.Node         { return el(atom.Li, args) }
func Menu(args ...any) *dom.Node       { return el(atom.Menu, args) }
func Dl(args ...any) *dom.Node         { return el(atom.Dl, args) }
func Dt(args ...any) *dom.Node         { return el(atom.Dt, args) }
func Dd(args ...any) *dom.Node         { return el(atom.Dd, args) }
func Hr(args ...any) *dom.Node         { return el(atom.Hr, args) }
func Figure(args ...any) *dom.Node     { return el(atom.Figure, args) }
func Figcaption(args ...any) *dom.Node { return el(atom.Figcaption, args) }

// Inline text semantics

func A(args ...any) *dom.Node      { return el(atom.A, args) }
func Span(args ...any) *dom.Node   { return el(atom.Span, args) }
func Strong(args ...any) *dom.Node { return el(atom.Strong, args) }
func Em(args ...any) *dom.Node     { return el(atom.Em, args) }
func B(args ...any) *dom.Node      { return el(atom.B, args) }
func I(args ...any) *dom.Node      { return el(atom.I, args) }
func U(args ...any) *dom.Node      { return el(atom.U, args) }
func S(args ...any) *dom.Node      { return el(atom.S, args) }
func Small(args ...any) *dom.Node  { return el(atom.Small, args) }
func Mark(args ...any) *dom.Node   { return el(atom.Mark, args) }
func Sub(args ...any) *dom.Node    { return el(atom.Sub, args) }
func Sup(args ...any) *dom.Node    { return el(atom.Sup, args) }
func Code(args ...any) *dom.Node   { return el(atom.Code, args) }
func Kbd(args ...any) *dom.Node    { return el(atom.Kbd, args) }
func Samp(args ...any) *dom.Node   { return el(atom.Samp, args) }
func Var(args ...any) *dom.Node    { return el(atom.Var, args) }
func Abbr(args ...any) *dom.Node   { return el(atom.Abbr, args) }
func Time_(args ...any) *dom.Node  { return el(atom.Time, args) }
func Cite(args ...any) *dom.Node   { return el(atom.Cite, args) }
func Q(args ...any) *dom.Node      { return el(atom.Q, args) }
func Dfn(args ...any) *dom.Node    { return el(atom.Dfn, args) }
func Ruby(args ...any) *dom.Node   { return el(atom.Ruby, args) }
func Rt(args ...any) *dom.Node     { return el(atom.Rt, args) }
func Rp(args ...any) *dom.Node     { return el(atom.Rp, args) }
func Bdi(args ...any) *dom.Node    { return el(atom.Bdi, args) }
func Bdo(args ...any) *dom.Node    { return el(atom.Bdo, args) }

// DataElement creates a <data> element. For data-* attributes use Data.
func DataElement(args ...any) *dom.Node { return el(atom.Data, args) }
func Br(args ...any) *dom.Node          { return el(atom.Br, args) }
func Wbr(args ...any) *dom.Node         { return el(atom.Wbr, args) }
func Ins(args ...any) *dom.Node         { return el(atom.Ins, args) }
func Del(args ...any) *dom.Node         { return el(atom.Del, args) }

// Forms

func Form(args ...any) *dom.Node     { return el(atom.Form, args) }
func Input(args ...any) *dom.Node    { return el(atom.Input, args) }
func Textarea(args ...any) *dom.Node { return el(atom.Textarea, args) }
func Select(args ...any) *dom.Node   { return el(atom.Select, args) }
func Option(args ...any) *dom.Node   { return el(atom.Option, args) }
func Optgroup(args ...any) *dom.Node { return el(atom.Optgroup, args) }
func Button(args ...any) *dom.Node   { return el(atom.Button, args) }
func Label(args ...any) *dom.Node    { return el(atom.Label, args) }
func Fieldset(args ...any) *dom.Node { return el(atom.Fieldset, args) }
func Legend(args ...any) *dom.Node   { return el(atom.Legend, args) }
func Datalist(args ...any) *dom.Node { return el(atom.Datalist, args) }
func Output(args ...any) *dom.Node   { return el(atom.Output, args) }
func Progress(args ...any) *dom.Node { return el(atom.Progress, args) }
func Meter(args ...any) *dom.Node    { return el(atom.Meter, args) }

// Tables

func Table(args ...any) *dom.Node    { return el(atom.Table, args) }
func Caption(args ...any) *dom.Node  { return el(atom.Caption, args) }
func Colgroup(args ...any) *dom.Node { return el(atom.Colgroup, args) }
func Col(args ...any) *dom.Node      { return el(atom.Col, args) }
func Thead(args ...any) *dom.Node    { return el(atom.Thead, args) }
func Tbody(args ...any) *dom.Node    { return el(atom.Tbody, args) }
func Tfoot(args ...any) *dom.Node    { return el(atom.Tfoot, args) }
func Tr(args ...any) *dom.Node       { return el(atom.Tr, args) }
func Td(args ...any) *dom.Node       { return el(atom.Td, args) }
func Th(args ...any) *dom.Node       { return el(atom.Th, args) }

// Embedded content

func Img(args ...any) *dom.Node     { return el(atom.Img, args) }
func Picture(args ...any) *dom.Node { return el(atom.Picture, args) }
func Source(args ...any) *dom.Node  { return el(atom.Source, args) }
func Audio(args ...any) *dom.Node   { return el(atom.Audio, args) }
func Video(args ...any) *dom.Node   { return el(atom.Video, args) }
func Track(args ...any) *dom.Node   { return el(atom.Track, args) }
func Iframe(args ...any) *dom.Node  { return el(atom.Iframe, args) }
func Embed(args ...any) *dom.Node   { return el(atom.Embed, args) }
func Object(args ...any) *dom.Node  { return el(atom.Object, args) }
func Param(args ...any) *dom.Node   { return el(atom.Param, args) }
func Canvas(args ...any) *dom.Node  { return el(atom.Canvas, args) }
func Map_(args ...any) *dom.Node    { return el(atom.Map, args) }
func Area(args ...any) *dom.Node    { return el(atom.Area, args) }

// Interactive elements

func Details(args ...any) *dom.Node  { return el(atom.Details, args) }
func Summary(args ...any) *dom.Node  { return el(atom.Summary, args) }
func Dialog(args ...any) *dom.Node   { return el(atom.Dialog, args) }
func Template(args ...any) *dom.Node { return el(atom.Template, args) }
func Slot(args ...any) *dom.Node     { return el(atom.Slot, args) }
