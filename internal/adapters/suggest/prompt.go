package suggest

import (
	"fmt"
	"strings"
	"terminal-itinerary-service/internal/ports"
)

const promptEN = `You are an assistant for travelers inside an airport terminal. You help them find facilities such as restaurants, shops, lounges, restrooms and gates.

Available facilities:
%s

Recommend 1 to 3 facilities from the list that fit the traveler's query. Keep the reply short and friendly.
If the traveler wants to plan their whole visit, offer a mix of options.

Answer with JSON:
- response: the reply to the traveler
- checkpointIds: ids of the recommended facilities, taken from the list above`

const promptZH = `你是机场航站楼内的旅客助手，帮助旅客寻找餐厅、商店、休息室、洗手间和登机口等设施。

可用设施:
%s

从列表中推荐1到3个符合旅客查询的设施。回复简短友好，使用简体中文。
如果旅客想规划整个候机时间，请提供多种选择。

以JSON回答:
- response: 给旅客的回复（简体中文）
- checkpointIds: 推荐设施的ID，必须来自上面的列表`

// buildPrompt renders the candidates and appends the traveler's query.
// Candidates arrive already localized.
func buildPrompt(req ports.SuggestionRequest) string {
	blocks := make([]string, 0, len(req.Candidates))
	for _, cp := range req.Candidates {
		blocks = append(blocks, fmt.Sprintf(
			"ID: %s\n名称: %s\n类型: %s\n位置: %s\n描述: %s",
			cp.ID, cp.Name, cp.Category, cp.Location, cp.Description,
		))
	}
	list := strings.Join(blocks, "\n\n")

	template := promptEN
	if req.Language == "zh" {
		template = promptZH
	}

	return fmt.Sprintf(template, list) + "\n\n用户查询: " + req.Query
}
