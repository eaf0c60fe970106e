package drawer

import (
	"fmt"
	"io"
	"sort"
	"text/template"
	"time"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
	"gopkg.in/go-playground/colors.v1" //nolint

	"github.com/askiada/go-chain-profile/pkg/chain/measure"
)

// DOTDrawer is a drawer that writes the chain graph in the Graphviz DOT language.
type DOTDrawer struct {
	graph graph.Graph[string, string]
	steps map[string]struct{}
}

// NewDOTDrawer creates a new DOT drawer.
func NewDOTDrawer() *DOTDrawer {
	return &DOTDrawer{
		graph: graph.New(graph.StringHash, graph.Directed()),
		steps: make(map[string]struct{}),
	}
}

// AddStep adds a step to the chain graph.
func (d *DOTDrawer) AddStep(name string) error {
	err := d.graph.AddVertex(name)
	if err != nil {
		return errors.Wrap(err, "unable to add vertex")
	}

	d.steps[name] = struct{}{}

	return nil
}

// AddLink adds a link between parent and children steps.
func (d *DOTDrawer) AddLink(parentName, childrenName string) error {
	err := d.graph.AddEdge(parentName, childrenName)
	if err != nil {
		return errors.Wrapf(err, "unable to add edge from %s to %s", parentName, childrenName)
	}

	return nil
}

// Draw writes the DOT description of the chain graph.
func (d *DOTDrawer) Draw(w io.Writer) error {
	err := dot(d.graph, w, GraphAttribute("rankdir", "LR"))
	if err != nil {
		return errors.Wrap(err, "unable to write dot description")
	}

	return nil
}

const maxRGB = 240

// AddMeasure colours the links from blue (fastest) to red (slowest) and labels the steps with their
// average duration and failure count. The end step also shows the accumulated chain duration.
func (d *DOTDrawer) AddMeasure(msr measure.Measure) error {
	allChanElapsed := make(map[time.Duration]string)
	sortedAllChanElapsed := []time.Duration{}

	for name, step := range msr.AllMetrics() {
		if _, ok := d.steps[name]; !ok {
			continue
		}
		for _, info := range step.AllTransports() {
			avg := info.AVG()
			if avg == 0 {
				continue
			}

			if _, ok := allChanElapsed[avg]; ok {
				continue
			}

			allChanElapsed[avg] = ""

			sortedAllChanElapsed = append(sortedAllChanElapsed, avg)
		}
	}

	if len(sortedAllChanElapsed) > 0 {
		err := colourLinks(allChanElapsed, sortedAllChanElapsed)
		if err != nil {
			return err
		}
	}

	err := d.updateMetrics(msr, allChanElapsed)
	if err != nil {
		return errors.Wrap(err, "unable to update metrics")
	}

	return nil
}

func colourLinks(allChanElapsed map[time.Duration]string, sortedAllChanElapsed []time.Duration) error {
	sort.Slice(sortedAllChanElapsed, func(i, j int) bool {
		return sortedAllChanElapsed[i] > sortedAllChanElapsed[j]
	})

	maxValue := sortedAllChanElapsed[0]
	minValue := sortedAllChanElapsed[len(sortedAllChanElapsed)-1]

	for curr := range allChanElapsed {
		fraction := 1.0
		if maxValue > minValue {
			fraction = float64(curr-minValue) / float64(maxValue-minValue)
		}

		red := maxRGB * fraction
		blue := -maxRGB*fraction + maxRGB

		colour, err := colors.RGB(uint8(red), 0, uint8(blue)) //nolint
		if err != nil {
			return errors.Wrap(err, "unable to get colour")
		}

		allChanElapsed[curr] = colour.ToHEX().String()
	}

	return nil
}

func (d *DOTDrawer) updateMetrics(msr measure.Measure, allChanElapsed map[time.Duration]string) error {
	for name, step := range msr.AllMetrics() {
		if _, ok := d.steps[name]; !ok {
			continue
		}
		_, properties, err := d.graph.VertexWithProperties(name)
		if err != nil {
			return errors.Wrap(err, "unable to get vertex properties")
		}

		label := ""
		if stepAvg := step.AVGDuration(); stepAvg != 0 {
			label = stepAvg.String()
		}
		if failures := step.Failures(); failures > 0 {
			if label != "" {
				label += ", "
			}
			label += fmt.Sprintf("failures: %d", failures)
		}
		if total := step.GetTotalDuration(); total > 0 {
			if label != "" {
				label += ", "
			}
			label += "total: " + total.String()
		}
		if label != "" {
			properties.Attributes["xlabel"] = label
		}

		for inputStep, info := range step.AllTransports() {
			avg := info.AVG()
			if avg == 0 {
				continue
			}
			if _, ok := d.steps[inputStep]; !ok {
				continue
			}

			err := d.graph.UpdateEdge(inputStep, name,
				graph.EdgeAttribute("label", avg.String()),
				graph.EdgeAttribute("fontcolor", "blue"),
				graph.EdgeAttribute("color", allChanElapsed[avg]), //nolint
			)
			if err != nil {
				return errors.Wrap(err, "unable to update edge")
			}
		}
	}

	return nil
}

//nolint:lll //this is a template
const dotTemplate = `strict {{.GraphType}} {
{{- range $k, $v := .Attributes}}
	{{$k}}="{{$v}}";
{{- end}}
{{- range $s := .Statements}}
	"{{.Source}}" {{if .Target}}{{$.EdgeOperator}} "{{.Target}}" [ {{range $k, $v := .EdgeAttributes}}{{$k}}="{{$v}}", {{end}}weight={{.EdgeWeight}} ]{{else}}[ {{range $k, $v := .HTMLAttributes}}{{$k}}={{$v}}, {{end}}{{range $k, $v := .SourceAttributes}}{{$k}}="{{$v}}", {{end}}weight={{.SourceWeight}} ]{{end}};
{{- end}}
}
`

type description struct {
	GraphType    string
	Attributes   map[string]string
	EdgeOperator string
	Statements   []statement
}

type statement struct {
	Source           string
	Target           string
	SourceAttributes map[string]string
	HTMLAttributes   map[string]string
	EdgeAttributes   map[string]string
	SourceWeight     int
	EdgeWeight       int
}

func dot(g graph.Graph[string, string], wrt io.Writer, options ...func(*description)) error {
	desc, err := generateDOT(g, options...)
	if err != nil {
		return fmt.Errorf("failed to generate DOT description: %w", err)
	}

	return renderDOT(wrt, desc)
}

// GraphAttribute is a functional option for the [dot] function.
func GraphAttribute(key, value string) func(*description) {
	return func(d *description) {
		d.Attributes[key] = value
	}
}

func generateDOT(gra graph.Graph[string, string], options ...func(*description)) (description, error) {
	desc := description{
		GraphType:    "graph",
		Attributes:   make(map[string]string),
		EdgeOperator: "--",
		Statements:   make([]statement, 0),
	}

	for _, option := range options {
		option(&desc)
	}

	if gra.Traits().IsDirected {
		desc.GraphType = "digraph"
		desc.EdgeOperator = "->"
	}

	adjacencyMap, err := gra.AdjacencyMap()
	if err != nil {
		return desc, errors.Wrap(err, "unable to get adjacency map")
	}

	vertices := make([]string, 0, len(adjacencyMap))
	for vertex := range adjacencyMap {
		vertices = append(vertices, vertex)
	}
	sort.Strings(vertices)

	for _, vertex := range vertices {
		_, sourceProperties, err := gra.VertexWithProperties(vertex)
		if err != nil {
			return desc, errors.Wrap(err, "unable to get vertex properties")
		}

		htmlAttributes := make(map[string]string)
		sourceAttributes := make(map[string]string, len(sourceProperties.Attributes))
		for k, v := range sourceProperties.Attributes {
			sourceAttributes[k] = v
		}

		if xlabel, ok := sourceAttributes["xlabel"]; ok {
			htmlAttributes["label"] = fmt.Sprintf(`<%s <BR /> <FONT POINT-SIZE="12">%s</FONT>>`, vertex, xlabel)

			delete(sourceAttributes, "xlabel")
		}

		stmt := statement{
			Source:           vertex,
			SourceWeight:     sourceProperties.Weight,
			SourceAttributes: sourceAttributes,
			HTMLAttributes:   htmlAttributes,
		}
		desc.Statements = append(desc.Statements, stmt)

		targets := make([]string, 0, len(adjacencyMap[vertex]))
		for adjacency := range adjacencyMap[vertex] {
			targets = append(targets, adjacency)
		}
		sort.Strings(targets)

		for _, adjacency := range targets {
			edge := adjacencyMap[vertex][adjacency]
			stmt := statement{
				Source:         vertex,
				Target:         adjacency,
				EdgeWeight:     edge.Properties.Weight,
				EdgeAttributes: edge.Properties.Attributes,
			}
			desc.Statements = append(desc.Statements, stmt)
		}
	}

	return desc, nil
}

func renderDOT(wrt io.Writer, desc description) error {
	tpl, err := template.New("dotTemplate").Parse(dotTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	err = tpl.Execute(wrt, desc)
	if err != nil {
		return errors.Wrap(err, "unable to execute template")
	}

	return nil
}

var _ Drawer = (*DOTDrawer)(nil)
