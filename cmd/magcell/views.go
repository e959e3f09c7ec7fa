package main

import (
	"github.com/katalvlaran/magcell/workflow"
)

type environmentView struct {
	Key     string `json:"key"`
	Species string `json:"species"`
	Site    int    `json:"site"`
	Members []int  `json:"members"`
}

type siteMapView struct {
	Factor         string            `json:"factor"`
	SupercellSites int               `json:"supercell_sites"`
	Environments   []environmentView `json:"environments"`
}

type variantView struct {
	Label   string       `json:"label"`
	Moments []float64    `json:"moments"`
	Sites   *siteMapView `json:"sites,omitempty"`
}

type structureView struct {
	Label    string        `json:"label"`
	Formula  string        `json:"formula"`
	Variants []variantView `json:"variants"`
}

type resultView struct {
	RunID       string          `json:"run_id"`
	Calculation string          `json:"calculation"`
	Defect      string          `json:"defect,omitempty"`
	Structures  []structureView `json:"structures"`
}

func newSiteMapView(m workflow.SiteMap) siteMapView {
	v := siteMapView{
		Factor:         m.Factor.String(),
		SupercellSites: m.Supercell.Len(),
		Environments:   make([]environmentView, 0, len(m.Sites)),
	}
	for _, r := range m.Sites {
		v.Environments = append(v.Environments, environmentView{
			Key:     r.Key,
			Species: r.Species.String(),
			Site:    r.Index,
			Members: r.Members,
		})
	}
	return v
}

func newResultView(res *workflow.Result) resultView {
	out := resultView{
		RunID:       res.RunID,
		Calculation: res.Calculation,
		Defect:      res.Defect,
		Structures:  make([]structureView, 0, len(res.Structures)),
	}
	for _, sr := range res.Structures {
		sv := structureView{Label: sr.Label, Formula: sr.Formula}
		for _, vr := range sr.Variants {
			vv := variantView{Label: vr.Label, Moments: vr.Structure.Moments()}
			if vr.Sites != nil {
				sm := newSiteMapView(*vr.Sites)
				vv.Sites = &sm
			}
			sv.Variants = append(sv.Variants, vv)
		}
		out.Structures = append(out.Structures, sv)
	}
	return out
}

func environmentRows(prefix []string, m siteMapView) [][]string {
	rows := make([][]string, 0, len(m.Environments))
	for _, e := range m.Environments {
		row := append([]string{}, prefix...)
		row = append(row, m.Factor, e.Key, e.Species, itoa(e.Site), itoa(len(e.Members)))
		rows = append(rows, row)
	}
	return rows
}
