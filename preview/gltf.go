package preview

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
)

// Minimal glTF 2.0 document model: just enough structure to build scene
// meshes with bounding boxes and paintable materials. POSITION accessors
// are required by the format to carry min/max, so geometry bounds come
// straight from the document without decoding buffers.
type gltfDocument struct {
	Meshes []struct {
		Name       string `json:"name"`
		Primitives []struct {
			Attributes map[string]int `json:"attributes"`
			Material   *int           `json:"material"`
		} `json:"primitives"`
	} `json:"meshes"`
	Accessors []struct {
		Min []float64 `json:"min"`
		Max []float64 `json:"max"`
	} `json:"accessors"`
	Materials []struct {
		Name                 string `json:"name"`
		PBRMetallicRoughness *struct {
			BaseColorFactor []float64 `json:"baseColorFactor"`
		} `json:"pbrMetallicRoughness"`
	} `json:"materials"`
}

// glbMagic is the header magic of the binary container format
const glbMagic = 0x46546C67 // "glTF"

// extractJSON returns the glTF JSON document from raw file bytes. Plain
// .gltf files are JSON already; .glb files wrap the JSON in a binary
// container whose first chunk must be the document.
func extractJSON(data []byte) ([]byte, error) {
	if len(data) < 4 || binary.LittleEndian.Uint32(data[0:4]) != glbMagic {
		return data, nil
	}

	// GLB: 12-byte header, then chunks of (length, type, payload)
	if len(data) < 20 {
		return nil, fmt.Errorf("truncated glb header")
	}
	chunkLen := binary.LittleEndian.Uint32(data[12:16])
	chunkType := binary.LittleEndian.Uint32(data[16:20])
	const jsonChunk = 0x4E4F534A // "JSON"
	if chunkType != jsonChunk {
		return nil, fmt.Errorf("first glb chunk is not JSON")
	}
	if uint32(len(data)) < 20+chunkLen {
		return nil, fmt.Errorf("truncated glb JSON chunk")
	}
	return data[20 : 20+chunkLen], nil
}

// colorFromFactor converts a glTF baseColorFactor to a hex string
func colorFromFactor(factor []float64) string {
	if len(factor) < 3 {
		return "#ffffff"
	}
	to255 := func(v float64) int {
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		return int(v*255 + 0.5)
	}
	return fmt.Sprintf("#%02x%02x%02x", to255(factor[0]), to255(factor[1]), to255(factor[2]))
}

// LoadAsset parses a .gltf or .glb file into scene meshes. Every primitive
// with a POSITION accessor becomes one mesh; materials referenced through
// pbrMetallicRoughness are treated as paintable standard materials.
func LoadAsset(path string) ([]*Mesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model file: %w", err)
	}

	jsonData, err := extractJSON(data)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack model file: %w", err)
	}

	var doc gltfDocument
	if err := json.Unmarshal(jsonData, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse glTF document: %w", err)
	}

	var meshes []*Mesh
	for _, gltfMesh := range doc.Meshes {
		for _, primitive := range gltfMesh.Primitives {
			posIndex, ok := primitive.Attributes["POSITION"]
			if !ok || posIndex < 0 || posIndex >= len(doc.Accessors) {
				continue
			}
			accessor := doc.Accessors[posIndex]
			if len(accessor.Min) < 3 || len(accessor.Max) < 3 {
				continue
			}

			geometry := &Geometry{
				Bounds: Box3{
					Min: Vector3{X: accessor.Min[0], Y: accessor.Min[1], Z: accessor.Min[2]},
					Max: Vector3{X: accessor.Max[0], Y: accessor.Max[1], Z: accessor.Max[2]},
				},
			}

			material := &Material{Name: "default", Color: "#ffffff", Standard: true}
			if primitive.Material != nil && *primitive.Material >= 0 && *primitive.Material < len(doc.Materials) {
				gltfMaterial := doc.Materials[*primitive.Material]
				material.Name = gltfMaterial.Name
				material.Standard = gltfMaterial.PBRMetallicRoughness != nil
				if material.Standard {
					material.Color = colorFromFactor(gltfMaterial.PBRMetallicRoughness.BaseColorFactor)
				}
			}

			meshes = append(meshes, &Mesh{
				Name:     gltfMesh.Name,
				Geometry: geometry,
				Material: material,
			})
		}
	}

	if len(meshes) == 0 {
		return nil, fmt.Errorf("model contains no renderable meshes")
	}
	return meshes, nil
}
