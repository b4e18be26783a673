package model

// KundaliBundle is the complete natal output for one birth input: the D1
// chart plus everything derived from it. It is a plain value object meant
// for serialization to downstream report layers.
type KundaliBundle struct {
	Chart      KundaliChart                  `json:"chart"`
	Divisional map[ChartType]DivisionalChart `json:"divisional_charts"`
	Derived    DerivedAstrology              `json:"derived"`
	Avakahada  *Avakahada                    `json:"avakahada,omitempty"`
	Dashas     []DashaPeriod                 `json:"dashas"`
	SadeSati   *SadeSatiStatus               `json:"sade_sati,omitempty"`
}
