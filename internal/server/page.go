package server

// indexHTML 内置上传页：选择模板和源文件，提交到 /api/convert 后展示下载链接
const indexHTML = `<!DOCTYPE html>
<html lang="zh">
<head>
<meta charset="utf-8">
<title>ShopConv - 商品列表转换</title>
<style>
body { font-family: -apple-system, "Segoe UI", Roboto, sans-serif; max-width: 720px; margin: 40px auto; padding: 0 16px; color: #333; }
h1 { font-size: 1.4em; }
fieldset { border: 1px solid #ddd; border-radius: 8px; margin-bottom: 16px; padding: 12px 16px; }
legend { font-weight: 600; }
button { background: #667eea; color: #fff; border: 0; border-radius: 6px; padding: 10px 24px; cursor: pointer; }
button:hover { background: #5568d3; }
#results li { margin: 6px 0; }
.err { color: #c0392b; }
</style>
</head>
<body>
<h1>商品列表转换</h1>
<form id="form">
  <fieldset>
    <legend>源文件（CSV / XLSX，可多选）</legend>
    <input type="file" name="source_files" multiple accept=".csv,.xlsx" required>
  </fieldset>
  <fieldset>
    <legend>模板 CSV</legend>
    <input type="file" name="template_file" accept=".csv">
    <label><input type="checkbox" id="useDefault"> 使用默认模板</label>
  </fieldset>
  <fieldset>
    <legend>选项</legend>
    <label><input type="checkbox" id="fallback" checked> Final Price 缺失时回退到 Cost</label><br>
    <label>输出文件名（可选）: <input type="text" id="customName"></label>
  </fieldset>
  <button type="submit">转换</button>
</form>
<ul id="results"></ul>
<script>
document.getElementById('form').addEventListener('submit', async (e) => {
  e.preventDefault();
  const fd = new FormData(e.target);
  fd.set('fallback_price', document.getElementById('fallback').checked);
  fd.set('template_option', document.getElementById('useDefault').checked ? 'default' : 'custom');
  fd.set('custom_output_name', document.getElementById('customName').value);
  const ul = document.getElementById('results');
  ul.innerHTML = '<li>转换中...</li>';
  try {
    const resp = await fetch('/api/convert', { method: 'POST', body: fd });
    const data = await resp.json();
    ul.innerHTML = '';
    if (!resp.ok) {
      ul.innerHTML = '<li class="err">' + (data.error || '转换失败') + '</li>';
      return;
    }
    for (const r of data.results) {
      const li = document.createElement('li');
      if (r.status === 'success') {
        li.innerHTML = r.source + ' → <a href="' + r.downloadUrl + '">' + r.displayName + '</a> (' + r.rows + ' 行)';
      } else {
        li.innerHTML = '<span class="err">' + r.source + ': ' + r.error + '</span>';
      }
      ul.appendChild(li);
    }
  } catch (err) {
    ul.innerHTML = '<li class="err">请求失败: ' + err + '</li>';
  }
});
</script>
</body>
</html>
`
