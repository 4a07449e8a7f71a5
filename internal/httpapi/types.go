package httpapi

import "github.com/avito-tech/dogwalk-server/internal/model"

type joinRequest struct {
	UserName string `json:"userName"`
	MapID    string `json:"mapId"`
}

type joinResponse struct {
	AuthToken string `json:"authToken"`
	PlayerID  int    `json:"playerId"`
}

type playerSummary struct {
	Name string `json:"name"`
}

type bagItemView struct {
	LootID    int `json:"lootId"`
	TypeIndex int `json:"typeIndex"`
}

type playerStateView struct {
	Position  [2]float64    `json:"pos"`
	Speed     [2]float64    `json:"speed"`
	Direction string        `json:"dir"`
	Bag       []bagItemView `json:"bag"`
	Score     int           `json:"score"`
}

type lootStateView struct {
	TypeIndex int        `json:"type"`
	Position  [2]float64 `json:"pos"`
}

type stateResponse struct {
	Players map[string]playerStateView `json:"players"`
	Loot    map[string]lootStateView   `json:"lootObjects"`
}

type actionRequest struct {
	Move string `json:"move"`
}

type tickRequest struct {
	TimeDelta float64 `json:"timeDelta"`
}

type mapSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type roadView struct {
	X0 int  `json:"x0"`
	Y0 int  `json:"y0"`
	X1 *int `json:"x1,omitempty"`
	Y1 *int `json:"y1,omitempty"`
}

type buildingView struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type officeView struct {
	ID      string `json:"id"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
	OffsetX int    `json:"offsetX"`
	OffsetY int    `json:"offsetY"`
}

type lootTypeView struct {
	Name  string `json:"name,omitempty"`
	Value int    `json:"value"`
}

type mapDetailResponse struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Roads       []roadView     `json:"roads"`
	Buildings   []buildingView `json:"buildings"`
	Offices     []officeView   `json:"offices"`
	LootTypes   []lootTypeView `json:"lootTypes"`
	DogSpeed    float64        `json:"dogSpeed"`
	BagCapacity int            `json:"bagCapacity"`
}

func toMapDetail(m *model.Map) mapDetailResponse {
	resp := mapDetailResponse{
		ID:          m.ID,
		Name:        m.Name,
		DogSpeed:    m.DogSpeed,
		BagCapacity: m.BagCapacity,
	}
	for _, r := range m.Roads {
		if r.IsHorizontal() {
			x1 := int(r.End.X)
			resp.Roads = append(resp.Roads, roadView{X0: int(r.Start.X), Y0: int(r.Start.Y), X1: &x1})
		} else {
			y1 := int(r.End.Y)
			resp.Roads = append(resp.Roads, roadView{X0: int(r.Start.X), Y0: int(r.Start.Y), Y1: &y1})
		}
	}
	for _, b := range m.Buildings {
		resp.Buildings = append(resp.Buildings, buildingView{X: b.Position.X, Y: b.Position.Y, W: b.Width, H: b.Height})
	}
	for _, o := range m.Offices {
		resp.Offices = append(resp.Offices, officeView{ID: o.ID, X: o.Position.X, Y: o.Position.Y, OffsetX: o.OffsetX, OffsetY: o.OffsetY})
	}
	for _, lt := range m.LootTypes {
		resp.LootTypes = append(resp.LootTypes, lootTypeView{Name: lt.Name, Value: lt.Value})
	}
	return resp
}
