package components

import (
	"github.com/automoto/slingshot/layout"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
)

// PieceData is a destructible structure block. Shape and material never
// change after creation.
type PieceData struct {
	Shape     layout.Shape
	Material  layout.Material
	Structure uuid.UUID // structure instance the piece was built into
}

var Piece = donburi.NewComponentType[PieceData]()

// AnnotationData holds the hover description of a piece.
type AnnotationData struct {
	Text string
}

var Annotation = donburi.NewComponentType[AnnotationData]()

type TargetData struct {
	Kind      layout.TargetKind
	Structure uuid.UUID
}

var Target = donburi.NewComponentType[TargetData]()
