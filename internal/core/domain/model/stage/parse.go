package stage

import (
	"encoding/json"
	"sort"
)

// Stage1Data is the normalized collection-assignment stage.
type Stage1Data struct {
	ProductAssignments []Stage1Item
	DeliveryRoutes     []DeliveryRoute
}

// Stage2Data is the normalized packaging/quality stage.
type Stage2Data struct {
	Items []Stage2Item
}

// Stage3Data is the normalized delivery-routing stage.
type Stage3Data struct {
	Products      []Stage3Item
	AirportGroups []AirportGroup
}

// Stage4Data is the normalized pricing stage.
type Stage4Data struct {
	ProductRows []Stage4Item
}

type stage1ItemDTO struct {
	Product       flexString `json:"product"`
	EntityType    flexString `json:"entityType"`
	EntityID      flexString `json:"entityId"`
	AssignedQty   flexFloat  `json:"assignedQty"`
	AssignedBoxes flexInt    `json:"assignedBoxes"`
	Place         flexString `json:"place"`
}

type deliveryRouteDTO struct {
	Product flexString `json:"product"`
	Place   flexString `json:"place"`
	Vehicle flexString `json:"vehicle"`
}

type stage1PayloadDTO struct {
	ProductAssignments []stage1ItemDTO    `json:"productAssignments"`
	DeliveryRoutes     []deliveryRouteDTO `json:"deliveryRoutes"`
}

// ParseStage1 normalizes the collection-assignment payload.
// Accepts a pre-parsed structure or serialized JSON text; malformed input
// yields empty data, meaning the stage is treated as not yet completed.
func ParseStage1(raw any) Stage1Data {
	data, ok := normalizePayload(raw)
	if !ok {
		return Stage1Data{}
	}

	var dto stage1PayloadDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return Stage1Data{}
	}

	out := Stage1Data{}
	for _, item := range dto.ProductAssignments {
		out.ProductAssignments = append(out.ProductAssignments, Stage1Item{
			Product:       string(item.Product),
			EntityType:    ParseEntityType(string(item.EntityType)),
			EntityID:      string(item.EntityID),
			AssignedQty:   float64(item.AssignedQty),
			AssignedBoxes: int(item.AssignedBoxes),
			Place:         string(item.Place),
		})
	}
	for _, route := range dto.DeliveryRoutes {
		out.DeliveryRoutes = append(out.DeliveryRoutes, DeliveryRoute{
			Product: string(route.Product),
			Place:   string(route.Place),
			Vehicle: string(route.Vehicle),
		})
	}
	return out
}

type stage2ItemDTO struct {
	Product        flexString `json:"product"`
	WastageKg      flexFloat  `json:"wastageKg"`
	ReuseKg        flexFloat  `json:"reuseKg"`
	LabourName     flexString `json:"labourName"`
	PickedQuantity flexFloat  `json:"pickedQuantity"`
}

type stage2PayloadDTO struct {
	Items []stage2ItemDTO `json:"items"`
}

// ParseStage2 normalizes the packaging/quality payload.
func ParseStage2(raw any) Stage2Data {
	data, ok := normalizePayload(raw)
	if !ok {
		return Stage2Data{}
	}

	var dto stage2PayloadDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return Stage2Data{}
	}

	out := Stage2Data{}
	for _, item := range dto.Items {
		out.Items = append(out.Items, Stage2Item{
			Product:        string(item.Product),
			WastageKg:      float64(item.WastageKg),
			ReuseKg:        float64(item.ReuseKg),
			LabourName:     string(item.LabourName),
			PickedQuantity: float64(item.PickedQuantity),
		})
	}
	return out
}

type stage3ItemDTO struct {
	Product          flexString `json:"product"`
	GrossWeight      flexString `json:"grossWeight"`
	Labour           flexString `json:"labour"`
	CT               flexString `json:"ct"`
	NoOfPkgs         flexInt    `json:"noOfPkgs"`
	AirportName      flexString `json:"airportName"`
	AirportLocation  flexString `json:"airportLocation"`
	SelectedDriverID flexString `json:"selectedDriverId"`
}

type airportProductDTO struct {
	Product flexString `json:"product"`
	Driver  flexString `json:"driver"`
}

type airportGroupDTO struct {
	Products []airportProductDTO `json:"products"`
}

type stage3PayloadDTO struct {
	Products    []stage3ItemDTO `json:"products"`
	SummaryData struct {
		AirportGroups     map[string]airportGroupDTO `json:"airportGroups"`
		DriverAssignments map[string]flexString      `json:"driverAssignments"`
	} `json:"summaryData"`
}

// ParseStage3 normalizes the delivery-routing payload.
//
// Airport groups are persisted as an object keyed by airport code; they
// are returned sorted by code so repeated parses of the same payload
// always yield the same group order. Items that carry no
// selectedDriverId of their own are backfilled from the summary's
// driverAssignments map, which is where older routing screens stored the
// per-product driver choice.
func ParseStage3(raw any) Stage3Data {
	data, ok := normalizePayload(raw)
	if !ok {
		return Stage3Data{}
	}

	var dto stage3PayloadDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return Stage3Data{}
	}

	out := Stage3Data{}
	for _, item := range dto.Products {
		parsed := Stage3Item{
			Product:          string(item.Product),
			GrossWeight:      string(item.GrossWeight),
			Labour:           string(item.Labour),
			CT:               string(item.CT),
			NoOfPkgs:         int(item.NoOfPkgs),
			AirportName:      string(item.AirportName),
			AirportLocation:  string(item.AirportLocation),
			SelectedDriverID: string(item.SelectedDriverID),
		}
		if parsed.SelectedDriverID == "" {
			if driverID, ok := dto.SummaryData.DriverAssignments[parsed.Product]; ok {
				parsed.SelectedDriverID = string(driverID)
			}
		}
		out.Products = append(out.Products, parsed)
	}

	codes := make([]string, 0, len(dto.SummaryData.AirportGroups))
	for code := range dto.SummaryData.AirportGroups {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		group := AirportGroup{AirportCode: code}
		for _, p := range dto.SummaryData.AirportGroups[code].Products {
			group.Products = append(group.Products, AirportProduct{
				Product: string(p.Product),
				Driver:  string(p.Driver),
			})
		}
		out.AirportGroups = append(out.AirportGroups, group)
	}

	return out
}

type stage4ItemDTO struct {
	Product     flexString  `json:"product"`
	MarketPrice flexDecimal `json:"marketPrice"`
	FinalPrice  flexDecimal `json:"finalPrice"`
	Price       flexDecimal `json:"price"`
	NetWeight   flexFloat   `json:"netWeight"`
	Quantity    flexFloat   `json:"quantity"`
}

type stage4PayloadDTO struct {
	ProductRows []stage4ItemDTO `json:"productRows"`
	ReviewData  struct {
		ProductRows []stage4ItemDTO `json:"productRows"`
	} `json:"reviewData"`
}

// ParseStage4 normalizes the pricing payload. Product rows live at the
// top level or nested under reviewData depending on whether the pricing
// screen's review step was used; top-level rows win when both exist.
func ParseStage4(raw any) Stage4Data {
	data, ok := normalizePayload(raw)
	if !ok {
		return Stage4Data{}
	}

	var dto stage4PayloadDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return Stage4Data{}
	}

	rows := dto.ProductRows
	if len(rows) == 0 {
		rows = dto.ReviewData.ProductRows
	}

	out := Stage4Data{}
	for _, row := range rows {
		out.ProductRows = append(out.ProductRows, Stage4Item{
			Product:     string(row.Product),
			MarketPrice: row.MarketPrice.decimal(),
			FinalPrice:  row.FinalPrice.decimal(),
			Price:       row.Price.decimal(),
			NetWeight:   float64(row.NetWeight),
			Quantity:    float64(row.Quantity),
		})
	}
	return out
}
