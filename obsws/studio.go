package obsws

import (
	"sort"

	"github.com/luxcue/obs-osc/control"
)

// Verify that Client implements the Studio interface.
var _ control.Studio = (*Client)(nil)

// Scenes returns the scene names, ordered as the OBS UI shows them.
// obs-websocket reports scenes bottom-up with an index per scene, so the
// list is sorted by descending index.
func (c *Client) Scenes() ([]string, error) {
	var out struct {
		Scenes []struct {
			SceneName  string `json:"sceneName"`
			SceneIndex int    `json:"sceneIndex"`
		} `json:"scenes"`
	}
	if err := c.call("GetSceneList", nil, &out); err != nil {
		return nil, err
	}

	sort.Slice(out.Scenes, func(i, j int) bool {
		return out.Scenes[i].SceneIndex > out.Scenes[j].SceneIndex
	})
	names := make([]string, len(out.Scenes))
	for i, s := range out.Scenes {
		names[i] = s.SceneName
	}
	return names, nil
}

// PreviewScene returns the scene staged in studio mode. Empty when
// studio mode is disabled.
func (c *Client) PreviewScene() (string, error) {
	var out struct {
		CurrentPreviewSceneName string `json:"currentPreviewSceneName"`
	}
	if err := c.call("GetCurrentPreviewScene", nil, &out); err != nil {
		return "", err
	}
	return out.CurrentPreviewSceneName, nil
}

// SetPreviewScene stages the named scene in studio mode.
func (c *Client) SetPreviewScene(name string) error {
	return c.call("SetCurrentPreviewScene", struct {
		SceneName string `json:"sceneName"`
	}{name}, nil)
}

// Transitions returns the transition names in list order.
func (c *Client) Transitions() ([]string, error) {
	var out struct {
		Transitions []struct {
			TransitionName string `json:"transitionName"`
		} `json:"transitions"`
	}
	if err := c.call("GetSceneTransitionList", nil, &out); err != nil {
		return nil, err
	}

	names := make([]string, len(out.Transitions))
	for i, t := range out.Transitions {
		names[i] = t.TransitionName
	}
	return names, nil
}

// SetCurrentTransition selects the named transition.
func (c *Client) SetCurrentTransition(name string) error {
	return c.call("SetCurrentSceneTransition", struct {
		TransitionName string `json:"transitionName"`
	}{name}, nil)
}

// TriggerTransition takes the preview scene live with the current
// transition. Requires studio mode.
func (c *Client) TriggerTransition() error {
	return c.call("TriggerStudioModeTransition", nil, nil)
}

// SetTransitionDuration sets the duration of the current transition in
// milliseconds.
func (c *Client) SetTransitionDuration(ms int) error {
	return c.call("SetCurrentSceneTransitionDuration", struct {
		TransitionDuration int `json:"transitionDuration"`
	}{ms}, nil)
}

// SetSourceVolume sets the volume multiplier of the named input.
func (c *Client) SetSourceVolume(name string, volume float64) error {
	return c.call("SetInputVolume", struct {
		InputName      string  `json:"inputName"`
		InputVolumeMul float64 `json:"inputVolumeMul"`
	}{name, volume}, nil)
}

func (c *Client) StartRecording() error { return c.call("StartRecord", nil, nil) }
func (c *Client) StopRecording() error  { return c.call("StopRecord", nil, nil) }
func (c *Client) StartStreaming() error { return c.call("StartStream", nil, nil) }
func (c *Client) StopStreaming() error  { return c.call("StopStream", nil, nil) }
