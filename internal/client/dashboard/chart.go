// Package dashboard turns the log analytics into bar charts and renders
// them as text.
package dashboard

import (
	"sort"

	"github.com/dmitrijs2005/logdash/internal/client/models"
)

// Unit tells the renderer how to format values.
type Unit int

const (
	UnitCount Unit = iota
	UnitMillis
)

// Dataset is one series of a chart, aligned with Chart.Labels.
type Dataset struct {
	Label  string
	Values []float64
}

type Chart struct {
	Title    string
	Unit     Unit
	Labels   []string
	Datasets []Dataset
}

// Empty reports whether the chart has nothing to draw.
func (c Chart) Empty() bool {
	return len(c.Labels) == 0 || len(c.Datasets) == 0
}

// HasCountData reports whether server has any positive count.
func HasCountData(data models.CountsByServer, server string) bool {
	for _, v := range data[server] {
		if v > 0 {
			return true
		}
	}
	return false
}

// HasResponseTimeData reports whether server has any positive average.
func HasResponseTimeData(data models.ResponseTimes, server string) bool {
	for _, item := range data[server] {
		if item.AvgResponseTime > 0 {
			return true
		}
	}
	return false
}

func HasUserData(data models.UserStats, server string) bool {
	return data[server] > 0
}

// countLabels is the sorted union of labels over all servers.
func countLabels(data models.CountsByServer) []string {
	seen := make(map[string]struct{})
	for _, byLabel := range data {
		for label := range byLabel {
			seen[label] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

func pathLabels(data models.ResponseTimes) []string {
	seen := make(map[string]struct{})
	for _, items := range data {
		for _, item := range items {
			seen[item.Path] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// countChart always carries the primary server and adds the secondary one
// only when it has data. Missing labels count as zero.
func countChart(title string, data models.CountsByServer) Chart {
	c := Chart{Title: title, Unit: UnitCount, Labels: countLabels(data)}

	series := func(server string) Dataset {
		d := Dataset{Label: server, Values: make([]float64, len(c.Labels))}
		for i, label := range c.Labels {
			d.Values[i] = float64(data[server][label])
		}
		return d
	}

	c.Datasets = append(c.Datasets, series(models.ServerPrimary))
	if HasCountData(data, models.ServerSecondary) {
		c.Datasets = append(c.Datasets, series(models.ServerSecondary))
	}
	return c
}

func SeverityChart(data models.CountsByServer) Chart {
	return countChart("Logs by severity", data)
}

func MethodsChart(data models.CountsByServer) Chart {
	return countChart("Logs by HTTP method", data)
}

// ResponseTimesChart plots the average response time per path. When a
// server lists a path twice the first entry wins.
func ResponseTimesChart(data models.ResponseTimes) Chart {
	c := Chart{Title: "Average response time by path", Unit: UnitMillis, Labels: pathLabels(data)}

	series := func(server string) Dataset {
		byPath := make(map[string]float64, len(data[server]))
		for _, item := range data[server] {
			if _, ok := byPath[item.Path]; !ok {
				byPath[item.Path] = item.AvgResponseTime
			}
		}
		d := Dataset{Label: server, Values: make([]float64, len(c.Labels))}
		for i, path := range c.Labels {
			d.Values[i] = byPath[path]
		}
		return d
	}

	c.Datasets = append(c.Datasets, series(models.ServerPrimary))
	if HasResponseTimeData(data, models.ServerSecondary) {
		c.Datasets = append(c.Datasets, series(models.ServerSecondary))
	}
	return c
}

// UsersChart shows the number of logs per server, leaving out servers
// without any.
func UsersChart(data models.UserStats) Chart {
	c := Chart{Title: "Logs per server", Unit: UnitCount}
	d := Dataset{Label: "Total logs"}
	for _, server := range models.Servers {
		if HasUserData(data, server) {
			c.Labels = append(c.Labels, server)
			d.Values = append(d.Values, float64(data[server]))
		}
	}
	c.Datasets = []Dataset{d}
	return c
}

// Build returns the four dashboard charts in display order.
func Build(a *models.Analytics) []Chart {
	return []Chart{
		SeverityChart(a.Severity),
		MethodsChart(a.Methods),
		ResponseTimesChart(a.ResponseTimes),
		UsersChart(a.Users),
	}
}
