package matching

import (
	"fmt"
	"math"

	"github.com/okian/jyotish/internal/domain/model"
)

// Maximum points per factor; the eight together total 36.
const (
	varnaMax   = 1
	vashyaMax  = 2
	taraMax    = 3
	yoniMax    = 4
	maitriMax  = 5
	ganaMax    = 6
	bhakootMax = 7
	nadiMax    = 8

	// MaxScore is the Ashta Koot total.
	MaxScore = 36
)

// vashyaCompat lists the explicitly scored category pairs; order-insensitive
// lookup, same-category pairs not listed here score 2, anything else 0.
var vashyaCompat = map[[2]string]float64{
	{"Manava", "Manava"}:           2,
	{"Manava", "Chatushpada"}:      1,
	{"Chatushpada", "Chatushpada"}: 2,
	{"Vanchar", "Vanchar"}:         2,
	{"Jalchar", "Jalchar"}:         2,
	{"Keeta", "Keeta"}:             2,
}

// yoniEnemies lists the hostile animal pairs; order-insensitive.
var yoniEnemies = map[[2]string]struct{}{
	{"Horse", "Buffalo"}:    {},
	{"Elephant", "Lion"}:    {},
	{"Sheep", "Monkey"}:     {},
	{"Serpent", "Mongoose"}: {},
	{"Dog", "Deer"}:         {},
	{"Cat", "Rat"}:          {},
	{"Tiger", "Cow"}:        {},
}

// ganaScores is directional: boy's group first.
var ganaScores = map[[2]string]float64{
	{"Deva", "Deva"}:         6,
	{"Manushya", "Manushya"}: 6,
	{"Rakshasa", "Rakshasa"}: 6,
	{"Deva", "Manushya"}:     5,
	{"Manushya", "Deva"}:     5,
	{"Manushya", "Rakshasa"}: 1,
	{"Rakshasa", "Manushya"}: 1,
	{"Deva", "Rakshasa"}:     0,
	{"Rakshasa", "Deva"}:     0,
}

// planetFriendship holds the classical friend(+1)/neutral(0)/enemy(-1)
// relations between the seven sign lords. Missing entries are neutral.
var planetFriendship = map[model.Planet]map[model.Planet]float64{
	model.Sun:     {model.Moon: 1, model.Mars: 1, model.Jupiter: 1, model.Venus: -1, model.Saturn: -1, model.Mercury: 0},
	model.Moon:    {model.Sun: 1, model.Mercury: 1, model.Mars: 0, model.Jupiter: 0, model.Venus: 0, model.Saturn: 0},
	model.Mars:    {model.Sun: 1, model.Moon: 1, model.Jupiter: 1, model.Venus: 0, model.Saturn: 0, model.Mercury: -1},
	model.Mercury: {model.Sun: 1, model.Venus: 1, model.Moon: -1, model.Mars: 0, model.Jupiter: 0, model.Saturn: 0},
	model.Jupiter: {model.Sun: 1, model.Moon: 1, model.Mars: 1, model.Venus: -1, model.Saturn: 0, model.Mercury: -1},
	model.Venus:   {model.Mercury: 1, model.Saturn: 1, model.Sun: -1, model.Moon: -1, model.Mars: 0, model.Jupiter: 0},
	model.Saturn:  {model.Mercury: 1, model.Venus: 1, model.Sun: -1, model.Moon: -1, model.Mars: -1, model.Jupiter: 0},
}

// bhakootBad holds the afflicted unordered distance pairs.
var bhakootBad = [3][2]int{{2, 12}, {5, 9}, {6, 8}}

// Score computes the full Ashta Koot compatibility result from the two
// Moon placements.
func Score(boySign model.ZodiacSign, boyDegree float64, girlSign model.ZodiacSign, girlDegree float64) (model.CompatibilityScore, error) {
	boy, err := AvakahadaFor(boySign, boyDegree)
	if err != nil {
		return model.CompatibilityScore{}, fmt.Errorf("boy details: %w", err)
	}
	girl, err := AvakahadaFor(girlSign, girlDegree)
	if err != nil {
		return model.CompatibilityScore{}, fmt.Errorf("girl details: %w", err)
	}

	factors := []model.CompatibilityFactor{
		varnaFactor(boy, girl),
		vashyaFactor(boy, girl),
		taraFactor(boy, girl),
		yoniFactor(boy, girl),
		maitriFactor(boy, girl),
		ganaFactor(boy, girl),
		bhakootFactor(boy, girl),
		nadiFactor(boy, girl),
	}

	var total float64
	for _, f := range factors {
		total += f.Score
	}

	return model.CompatibilityScore{
		Factors:     factors,
		TotalScore:  total,
		MaxScore:    MaxScore,
		Percentage:  roundTo(total/MaxScore*100, 1),
		Verdict:     verdict(total),
		BoyDetails:  boy,
		GirlDetails: girl,
	}, nil
}

func verdict(total float64) model.MatchVerdict {
	switch {
	case total >= 25:
		return model.VerdictExcellent
	case total >= 18:
		return model.VerdictGood
	case total >= 12:
		return model.VerdictAverage
	default:
		return model.VerdictBelowAverage
	}
}

// Varna: one point when the boy's tier is not below the girl's.
func varnaFactor(boy, girl model.Avakahada) model.CompatibilityFactor {
	f := model.CompatibilityFactor{
		Name: "Varna", MaxScore: varnaMax,
		BoyValue: boy.Varna, GirlValue: girl.Varna,
		Area: "Work & Status",
	}
	if varnaRank(boy.Varna) >= varnaRank(girl.Varna) {
		f.Score = 1
		f.Description = fmt.Sprintf("Boy (%s) is equal or higher than Girl (%s).", boy.Varna, girl.Varna)
	} else {
		f.Description = fmt.Sprintf("Boy (%s) is lower than Girl (%s).", boy.Varna, girl.Varna)
	}
	return f
}

func varnaRank(varna string) int {
	for i, v := range varnaHierarchy {
		if v == varna {
			return i
		}
	}
	return 0
}

func vashyaFactor(boy, girl model.Avakahada) model.CompatibilityFactor {
	f := model.CompatibilityFactor{
		Name: "Vashya", MaxScore: vashyaMax,
		BoyValue: boy.Vashya, GirlValue: girl.Vashya,
		Area:        "Dominance & Control",
		Description: fmt.Sprintf("Boy: %s, Girl: %s.", boy.Vashya, girl.Vashya),
	}
	if s, ok := vashyaCompat[[2]string{boy.Vashya, girl.Vashya}]; ok {
		f.Score = s
	} else if s, ok := vashyaCompat[[2]string{girl.Vashya, boy.Vashya}]; ok {
		f.Score = s
	} else if boy.Vashya == girl.Vashya {
		f.Score = 2
	}
	return f
}

// Tara counts the boy's nakshatra from the girl's; the 1-9 cycle position
// decides auspiciousness.
func taraFactor(boy, girl model.Avakahada) model.CompatibilityFactor {
	f := model.CompatibilityFactor{
		Name: "Tara", MaxScore: taraMax,
		BoyValue: boy.Nakshatra.String(), GirlValue: girl.Nakshatra.String(),
		Area: "Destiny & Health",
	}

	dist := (int(boy.Nakshatra)-int(girl.Nakshatra)+model.NakshatraCount)%model.NakshatraCount + 1
	taraNum := (dist-1)%9 + 1

	switch taraNum {
	case 3, 5, 7:
		f.Score = 3
		f.Description = fmt.Sprintf("Tara %d is auspicious.", taraNum)
	case 9:
		f.Description = fmt.Sprintf("Tara %d is inauspicious.", taraNum)
	default:
		f.Score = 1.5
		f.Description = fmt.Sprintf("Tara %d is neutral.", taraNum)
	}
	return f
}

func yoniFactor(boy, girl model.Avakahada) model.CompatibilityFactor {
	f := model.CompatibilityFactor{
		Name: "Yoni", MaxScore: yoniMax,
		BoyValue: boy.Yoni, GirlValue: girl.Yoni,
		Area: "Physical & Intimacy",
	}

	_, enemy := yoniEnemies[[2]string{boy.Yoni, girl.Yoni}]
	if !enemy {
		_, enemy = yoniEnemies[[2]string{girl.Yoni, boy.Yoni}]
	}

	switch {
	case boy.Yoni == girl.Yoni:
		f.Score = 4
		f.Description = fmt.Sprintf("Same Yoni (%s): excellent physical compatibility.", boy.Yoni)
	case enemy:
		f.Description = fmt.Sprintf("%s and %s are enemies.", boy.Yoni, girl.Yoni)
	default:
		f.Score = 2
		f.Description = fmt.Sprintf("%s and %s are neutral.", boy.Yoni, girl.Yoni)
	}
	return f
}

// Graha Maitri compares the friendship of the two Moon-sign lords in both
// directions and grades the average.
func maitriFactor(boy, girl model.Avakahada) model.CompatibilityFactor {
	boyLord := boy.Sign.Lord()
	girlLord := girl.Sign.Lord()

	f := model.CompatibilityFactor{
		Name: "Graha Maitri", MaxScore: maitriMax,
		BoyValue: boyLord.String(), GirlValue: girlLord.String(),
		Area: "Mental Compatibility",
	}

	if boyLord == girlLord {
		f.Score = 5
		f.Description = fmt.Sprintf("Same lord (%s): excellent mental compatibility.", boyLord)
		return f
	}

	avg := (planetFriendship[boyLord][girlLord] + planetFriendship[girlLord][boyLord]) / 2
	switch {
	case avg >= 0.5:
		f.Score = 5
		f.Description = fmt.Sprintf("%s and %s are friends.", boyLord, girlLord)
	case avg >= 0:
		f.Score = 3
		f.Description = fmt.Sprintf("%s and %s are neutral.", boyLord, girlLord)
	default:
		f.Description = fmt.Sprintf("%s and %s are enemies.", boyLord, girlLord)
	}
	return f
}

func ganaFactor(boy, girl model.Avakahada) model.CompatibilityFactor {
	score, ok := ganaScores[[2]string{boy.Gana, girl.Gana}]
	if !ok {
		score = 3
	}
	return model.CompatibilityFactor{
		Name: "Gana", Score: score, MaxScore: ganaMax,
		BoyValue: boy.Gana, GirlValue: girl.Gana,
		Area:        "Temperament & Nature",
		Description: fmt.Sprintf("Boy: %s, Girl: %s.", boy.Gana, girl.Gana),
	}
}

// Bhakoot checks the inclusive sign distances in both directions against
// the afflicted pairs.
func bhakootFactor(boy, girl model.Avakahada) model.CompatibilityFactor {
	f := model.CompatibilityFactor{
		Name: "Bhakoot", MaxScore: bhakootMax,
		BoyValue: boy.Sign.String(), GirlValue: girl.Sign.String(),
		Area: "Love & Prosperity",
	}

	dist1 := (int(boy.Sign)-int(girl.Sign)+model.SignCount)%model.SignCount + 1
	dist2 := (int(girl.Sign)-int(boy.Sign)+model.SignCount)%model.SignCount + 1

	for _, bad := range bhakootBad {
		if (dist1 == bad[0] && dist2 == bad[1]) || (dist2 == bad[0] && dist1 == bad[1]) {
			f.Description = fmt.Sprintf("Distance %d/%d indicates Bhakoot Dosha.", dist1, dist2)
			return f
		}
	}
	f.Score = 7
	f.Description = fmt.Sprintf("No Bhakoot Dosha detected (distance: %d/%d).", dist1, dist2)
	return f
}

// Nadi: same bucket is a dosha and scores zero.
func nadiFactor(boy, girl model.Avakahada) model.CompatibilityFactor {
	f := model.CompatibilityFactor{
		Name: "Nadi", MaxScore: nadiMax,
		BoyValue: boy.Nadi, GirlValue: girl.Nadi,
		Area: "Health & Progeny",
	}
	if boy.Nadi == girl.Nadi {
		f.Description = fmt.Sprintf("Same Nadi (%s): Nadi Dosha, risk to progeny.", boy.Nadi)
		return f
	}
	f.Score = 8
	f.Description = fmt.Sprintf("Different Nadis (%s vs %s): no Nadi Dosha.", boy.Nadi, girl.Nadi)
	return f
}

func roundTo(v float64, places int) float64 {
	f := math.Pow10(places)
	return math.Round(v*f) / f
}
