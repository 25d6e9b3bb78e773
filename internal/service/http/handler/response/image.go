package response

import jsoniter "github.com/json-iterator/go"

type GetImage struct {
	URL string `json:"url"`
}

func (g *GetImage) Marsh() (string, error) {
	return jsoniter.MarshalToString(g)
}

func UnmarshalGetImage(data string) (*GetImage, error) {
	var result GetImage
	err := jsoniter.Unmarshal([]byte(data), &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}
